package models

// APIStatus reports whether the upstream backend answered the overview health check
type APIStatus string

const (
	APIStatusOK    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

// OverviewTotals holds the headline counters of the dashboard
type OverviewTotals struct {
	Courses   int `json:"courses"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
	Students  int `json:"students"`
	Companies int `json:"companies"`
}

// Overview is the aggregated dashboard landing screen
type Overview struct {
	Totals          OverviewTotals `json:"totals"`
	RecentCourses   []Course       `json:"recentCourses"`
	RecentStudents  []Student      `json:"recentStudents"`
	RecentCompanies []Company      `json:"recentCompanies"`
	APIStatus       APIStatus      `json:"apiStatus"`
}

// CourseStatusFilter filters courses by publish state
type CourseStatusFilter string

const (
	CourseStatusAll       CourseStatusFilter = "all"
	CourseStatusPublished CourseStatusFilter = "published"
	CourseStatusDraft     CourseStatusFilter = "draft"
)

// CourseSort orders course lists
type CourseSort string

const (
	CourseSortNewest CourseSort = "newest"
	CourseSortOldest CourseSort = "oldest"
	CourseSortTitle  CourseSort = "title"
)

// CourseFilter holds list screen parameters
type CourseFilter struct {
	Search   string
	Status   CourseStatusFilter
	Sort     CourseSort
	Page     int
	PageSize int
}

// CoursePage is one page of a filtered course list
type CoursePage struct {
	Items      []Course `json:"items"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

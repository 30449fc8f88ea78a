package types

// LinkItem is a titled link collected from the upstream home page.
type LinkItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// HomeLinks groups the home page link lists.
type HomeLinks struct {
	News          []LinkItem `json:"news"`
	PressReleases []LinkItem `json:"pressReleases"`
}

// NewsItem is a dated news article.
type NewsItem struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ImageAlt    string   `json:"imageAlt,omitempty"`
}

// BillStatus is the inferred legislative status of a bill.
type BillStatus string

const (
	StatusIntroduced BillStatus = "introduced"
	StatusInProgress BillStatus = "in-progress"
	StatusPassed     BillStatus = "passed"
)

// BillPriority is the keyword-inferred urgency of a bill.
type BillPriority string

const (
	PriorityHigh   BillPriority = "high"
	PriorityMedium BillPriority = "medium"
	PriorityNormal BillPriority = "normal"
)

// Bill is one row of the upstream bills table, classified.
type Bill struct {
	Title      string `json:"title"`
	LaidBy     string `json:"laidBy"`
	LaidOn     string `json:"laidOn"`
	GazettedOn string `json:"gazettedOn"`
	URL        string `json:"url"`
	// BillNumber is a per-response sequence, not a stable identifier.
	BillNumber          string       `json:"billNumber"`
	Category            string       `json:"category"`
	Status              BillStatus   `json:"status"`
	Stage               string       `json:"stage"`
	Priority            BillPriority `json:"priority"`
	Description         string       `json:"description"`
	Tags                []string     `json:"tags"`
	FormattedLaidOn     string       `json:"formattedLaidOn"`
	FormattedGazettedOn string       `json:"formattedGazettedOn"`
}

// BillsPage is one page of the bills listing.
type BillsPage struct {
	Bills       []Bill `json:"bills"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalBills  int    `json:"totalBills"`
	HasNextPage bool   `json:"hasNextPage"`
	HasPrevPage bool   `json:"hasPrevPage"`
}

// Party codes recognised on the upstream member listing.
const (
	PartyNPP         = "NPP"
	PartyNDC         = "NDC"
	PartyIndependent = "Independent"
)

// MemberPerformance is generated display filler.
type MemberPerformance struct {
	AttendanceRate     float64 `json:"attendanceRate"`
	BillsSponsored     int     `json:"billsSponsored"`
	MotionsMoved       int     `json:"motionsMoved"`
	QuestionsAsked     int     `json:"questionsAsked"`
	StatementsMade     int     `json:"statementsMade"`
	CommitteeMeetings  int     `json:"committeeMeetings"`
	ConstituencyVisits int     `json:"constituencyVisits"`
}

// VotingRecord is generated display filler.
type VotingRecord struct {
	TotalVotes int     `json:"totalVotes"`
	Yes        int     `json:"yes"`
	No         int     `json:"no"`
	Abstain    int     `json:"abstain"`
	Absent     int     `json:"absent"`
	PartyLine  float64 `json:"partyLineRate"`
}

// SocialHandles are generated display filler.
type SocialHandles struct {
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Activity is one generated entry of a member's activity log.
type Activity struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ParliamentMember is a Member of Parliament.
type ParliamentMember struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Constituency    string            `json:"constituency"`
	Region          string            `json:"region"`
	Party           string            `json:"party"`
	PartyFullName   string            `json:"partyFullName"`
	PartyColor      string            `json:"partyColor"`
	Role            string            `json:"role"`
	Committees      []string          `json:"committees"`
	ProfileURL      string            `json:"profileUrl,omitempty"`
	ImageURL        string            `json:"imageUrl,omitempty"`
	Performance     MemberPerformance `json:"performance"`
	VotingRecord    VotingRecord      `json:"votingRecord"`
	PopularityScore int               `json:"popularityScore"`
	InfluenceScore  int               `json:"influenceScore"`
	Social          SocialHandles     `json:"social"`
	RecentActivity  []Activity        `json:"recentActivity"`
}

// MembersPage is the filtered member listing with facet values.
type MembersPage struct {
	Members    []ParliamentMember `json:"members"`
	TotalCount int                `json:"totalCount"`
	Parties    []string           `json:"parties"`
	Regions    []string           `json:"regions"`
	Committees []string           `json:"committees"`
	Roles      []string           `json:"roles"`
}

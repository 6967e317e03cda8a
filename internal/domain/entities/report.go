package entities

// ReportFileName is the conventional name under which the HTML report is stored.
const ReportFileName = "dependency_diff.html"

// Report is a rendered dependency diff ready to be written or served.
type Report struct {
	Job           string
	Format        string
	FileName      string
	ContentType   string
	Content       string
	CurrentBuild  int
	PreviousBuild int
}

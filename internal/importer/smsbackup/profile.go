package smsbackup

// Profile describes the column layout of a backup export format.
// Adding a new export app is just adding a new Profile to the profiles slice.
type Profile struct {
	Name string
	// SenderCol holds the notification package name. When empty the dump is a
	// plain SMS export and every row is attributed to the messaging app.
	SenderCol string
	TitleCol  string
	BodyCol   string
	TimeCol   string
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.TitleCol, p.BodyCol, p.TimeCol}

	if p.SenderCol != "" {
		cols = append(cols, p.SenderCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:      "notification",
		SenderCol: "package",
		TitleCol:  "title",
		BodyCol:   "text",
		TimeCol:   "time",
	},
	{
		Name:     "sms",
		TitleCol: "address",
		BodyCol:  "body",
		TimeCol:  "date",
	},
}

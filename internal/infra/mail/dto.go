package mail

type OutreachEmailData struct {
	Name     string
	Company  string
	Attempt  int
	FollowUp bool
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

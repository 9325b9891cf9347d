package sender

// EmailConfig holds the asynchronous email channel configuration.
// Postmark tokens are optional so development environments can run with
// the file-based dev sender instead; SenderEmail establishes the sender
// identity for all outbound alerts.
type EmailConfig struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL"`
	DevOutputDir         string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// HasPostmark reports whether the config carries live Postmark credentials.
func (c EmailConfig) HasPostmark() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}

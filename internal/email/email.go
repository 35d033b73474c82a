package email

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers messages. The SMTP sender is used in real deployments;
// tests and database-less demo runs use the mock.
type Sender interface {
	Send(msg Message) error
}

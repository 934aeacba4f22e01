package domain

// IncomingMessage is one raw chat line as handed over by the platform
// adapter. DisplayName is already resolved by the platform; this core
// never maps ids to names itself.
type IncomingMessage struct {
	GroupID     GroupID
	UserID      string
	DisplayName string
	Text        string
}

// Reply is the rendered answer to one incoming message. Mentions lists
// the user ids the platform should @-notify alongside the text.
type Reply struct {
	Text     string
	Mentions []string
}

func (r Reply) IsZero() bool {
	return r.Text == "" && len(r.Mentions) == 0
}

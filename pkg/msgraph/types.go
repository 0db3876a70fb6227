package msgraph

// DateTimeTimeZone is the Graph representation of an event boundary.
type DateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// EmailAddress identifies a mailbox participant.
type EmailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Organizer is the event organizer field.
type Organizer struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

// ItemBody is the Graph event body field.
type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Event is an Outlook calendar event as returned by Graph, restricted to the
// fields the service selects.
type Event struct {
	ID        string            `json:"id"`
	Subject   string            `json:"subject"`
	Start     *DateTimeTimeZone `json:"start"`
	End       *DateTimeTimeZone `json:"end"`
	Organizer *Organizer        `json:"organizer,omitempty"`
}

// EventPayload is the body of a Graph create-event call.
type EventPayload struct {
	Subject string           `json:"subject"`
	Start   DateTimeTimeZone `json:"start"`
	End     DateTimeTimeZone `json:"end"`
	Body    ItemBody         `json:"body"`
}

// Profile is the subset of the Graph /me resource the service reads.
type Profile struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
}

// Email returns the best-effort address for the profile. Personal accounts
// often have an empty mail field and carry the address in userPrincipalName.
func (p Profile) Email() string {
	if p.Mail != "" {
		return p.Mail
	}
	return p.UserPrincipalName
}

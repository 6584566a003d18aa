package ws

// Document holds a room's single shared state string. Access is
// serialized by the owning room's lock; the latest applied update wins
// and no history is kept.
type Document struct {
	content string
}

func (d *Document) SetContent(s string) { d.content = s }

func (d *Document) Content() string { return d.content }

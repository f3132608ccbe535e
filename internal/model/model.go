package model

// SchemaVersion is the checklist document schema tag. Documents persisted
// with any other version (or none) are regenerated from a preset on load.
const SchemaVersion = 2

const (
	MaxNameLen  = 60
	MaxEmojiLen = 4
	MaxStreak   = 9999
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

type Item struct {
	ID    string `json:"id"`
	Cat   string `json:"cat"`
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
	Done  bool   `json:"done"`
}

// Document is the persisted/working checklist for one trip mode.
type Document struct {
	Version int        `json:"version"`
	Mode    string     `json:"mode"`
	Cats    []Category `json:"cats"`
	Items   []Item     `json:"items"`

	// CompletedOnce latches true when the list reaches 100% done, and is
	// cleared by any mutation that could un-complete it. It keeps the
	// completion celebration from re-firing while the list stays done.
	CompletedOnce bool `json:"__completedOnce"`
}

type Settings struct {
	TripMode string `json:"tripMode"`
	Motion   bool   `json:"motion"`
	Sound    bool   `json:"sound"`
	Streak   int    `json:"streak"`
}

// Progress is the derived done/total view the renderer and CLI report.
type Progress struct {
	Done      int  `json:"done"`
	Total     int  `json:"total"`
	Pct       int  `json:"pct"`
	Completed bool `json:"completed"`
}

func (d *Document) FindItem(id string) (*Item, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i], true
		}
	}
	return nil, false
}

func (d *Document) FindCategory(id string) (*Category, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Cats {
		if d.Cats[i].ID == id {
			return &d.Cats[i], true
		}
	}
	return nil, false
}

// HasCategory reports whether id references a category in Cats.
func (d *Document) HasCategory(id string) bool {
	_, ok := d.FindCategory(id)
	return ok
}

// Progress computes the done/total counts. Completed requires at least one
// item: an empty list never counts as complete.
func (d *Document) Progress() Progress {
	p := Progress{}
	if d == nil {
		return p
	}
	p.Total = len(d.Items)
	for _, it := range d.Items {
		if it.Done {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Pct = p.Done * 100 / p.Total
		p.Completed = p.Done == p.Total
	}
	return p
}

// Clone returns a deep copy. Mutating the copy never aliases the original.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.Cats = make([]Category, len(d.Cats))
	copy(out.Cats, d.Cats)
	out.Items = make([]Item, len(d.Items))
	copy(out.Items, d.Items)
	return &out
}

// DefaultTripMode is the fallback mode key. It must match a preset key;
// the preset package asserts this at init.
const DefaultTripMode = "weekend"

func DefaultSettings() Settings {
	return Settings{
		TripMode: DefaultTripMode,
		Motion:   true,
		Sound:    true,
		Streak:   0,
	}
}

package draft

import (
	"time"

	"github.com/Makepad-fr/itemdeck/internal/model"
)

// Form is the creation dialog: hidden until Open, hidden again after
// Submit or Cancel. Nothing blocks a submit.
type Form struct {
	Visible  bool
	Name     string
	Category model.Category
	Priority model.Priority
	TagsText string
	Done     bool
}

func NewForm() *Form {
	f := &Form{}
	f.reset()
	return f
}

func (f *Form) reset() {
	f.Name = ""
	f.Category = model.CategoryTodo
	f.Priority = model.PriorityMedium
	f.TagsText = ""
	f.Done = false
}

func (f *Form) Open() { f.Visible = true }

// Cancel hides the dialog. The draft is kept for the next Open.
func (f *Form) Cancel() { f.Visible = false }

// Submit creates the item, prepends it, resets the draft and hides the dialog.
func (f *Form) Submit(items []model.Item, now time.Time) ([]model.Item, model.Item) {
	out, it := model.Create(items, model.NewItem{
		Name:     f.Name,
		Category: f.Category,
		Priority: f.Priority,
		TagsText: f.TagsText,
		Done:     f.Done,
	}, now)
	f.reset()
	f.Visible = false
	return out, it
}

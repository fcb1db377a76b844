package types

// Patches enumerate the mutable fields of each entity kind. A nil field is left
// untouched. Identity fields (ID, CreatedAt, FolderID) and IsDefault are not
// patchable.

// SchedulePatch lists the mutable fields of a Schedule.
type SchedulePatch struct {
	Title           *string
	Content         *string
	Date            *string
	StartTime       *string
	EndTime         *string
	Category        *string
	Emoji           *string
	BackgroundColor *string
	TextColor       *string
}

// Validate rejects patch values that would break a schedule's invariants.
func (p SchedulePatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return ErrInvalidTitle
	}
	if p.Date != nil && !ValidDate(*p.Date) {
		return ErrInvalidDate
	}
	if (p.StartTime != nil && !validOptionalClock(*p.StartTime)) ||
		(p.EndTime != nil && !validOptionalClock(*p.EndTime)) {
		return ErrInvalidTime
	}
	return nil
}

// Apply merges the patch into s.
func (p SchedulePatch) Apply(s *Schedule) {
	setIf(&s.Title, p.Title)
	setIf(&s.Content, p.Content)
	setIf(&s.Date, p.Date)
	setIf(&s.StartTime, p.StartTime)
	setIf(&s.EndTime, p.EndTime)
	setIf(&s.Category, p.Category)
	setIf(&s.Emoji, p.Emoji)
	setIf(&s.BackgroundColor, p.BackgroundColor)
	setIf(&s.TextColor, p.TextColor)
}

// TodoPatch lists the mutable fields of a Todo.
type TodoPatch struct {
	Title           *string
	Description     *string
	DueDate         *string
	Category        *string
	Completed       *bool
	Emoji           *string
	BackgroundColor *string
	TextColor       *string
}

// Validate rejects patch values that would break a todo's invariants.
func (p TodoPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return ErrInvalidTitle
	}
	if p.DueDate != nil && *p.DueDate != "" && !ValidDate(*p.DueDate) {
		return ErrInvalidDate
	}
	return nil
}

// Apply merges the patch into t.
func (p TodoPatch) Apply(t *Todo) {
	setIf(&t.Title, p.Title)
	setIf(&t.Description, p.Description)
	setIf(&t.DueDate, p.DueDate)
	setIf(&t.Category, p.Category)
	setIf(&t.Completed, p.Completed)
	setIf(&t.Emoji, p.Emoji)
	setIf(&t.BackgroundColor, p.BackgroundColor)
	setIf(&t.TextColor, p.TextColor)
}

// NotePatch lists the mutable fields of a Note. UpdatedAt is stamped by the
// planner, not carried in the patch.
type NotePatch struct {
	Title    *string
	Content  *string
	Category *string
}

// Validate rejects patch values that would break a note's invariants.
func (p NotePatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return ErrInvalidTitle
	}
	return nil
}

// Apply merges the patch into n.
func (p NotePatch) Apply(n *Note) {
	setIf(&n.Title, p.Title)
	setIf(&n.Content, p.Content)
	setIf(&n.Category, p.Category)
}

// FolderPatch lists the mutable fields of a Folder.
type FolderPatch struct {
	Name *string
}

// Validate rejects an empty folder name.
func (p FolderPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// Apply merges the patch into f.
func (p FolderPatch) Apply(f *Folder) {
	setIf(&f.Name, p.Name)
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T {
	return &v
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

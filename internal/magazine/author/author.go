package author

// Author represents a magazine staff writer.
//
// Author is the derived "First Last" display name; repositories fill it on
// create, update, and delete echoes, and it is omitted from plain list rows.
type Author struct {
	ID           int    `json:"id"`
	Author       string `json:"author,omitempty"`
	AuthorFirst  string `json:"authorFirst"`
	AuthorLast   string `json:"authorLast"`
	AuthorHandle string `json:"authorHandle"`
	AuthorSlogan string `json:"authorSlogan"`
	AuthorBio    string `json:"authorBio"`
	Icon         string `json:"icon"`
}

// Field names for validation messages
const (
	FieldFirst  = "authorFirst"
	FieldLast   = "authorLast"
	FieldHandle = "authorHandle"
	FieldSlogan = "authorSlogan"
	FieldBio    = "authorBio"
)

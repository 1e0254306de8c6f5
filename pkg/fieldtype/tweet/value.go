package tweet

// Value holds a tweet field. The zero Value is the empty value, meaning the
// field was not filled in.
type Value struct {
	URL       string
	AuthorURL string
	Contents  string
}

func NewValue(url string) Value {
	return Value{URL: url}
}

func (v Value) IsEmpty() bool {
	return v.URL == ""
}

// AuthorHandle returns the author segment of URL, or "" if URL is not a
// status URL.
func (v Value) AuthorHandle() string {
	author, _, _ := ParseStatusURL(v.URL)
	return author
}

func (v Value) StatusID() string {
	_, statusID, _ := ParseStatusURL(v.URL)
	return statusID
}

func (v Value) String() string {
	return v.URL
}

package notion

// Task is the flattened task shape exchanged with a Notion database page.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
}

// TaskUpdate carries the fields of a partial Notion page update. Zero-value
// fields are left untouched; Description uses a pointer so it can be cleared.
type TaskUpdate struct {
	ID          string  `json:"id"`
	Title       string  `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date,omitempty"`
	Time        string  `json:"time,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Status      string  `json:"status,omitempty"`
	Deadline    string  `json:"deadline,omitempty"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

type dateValue struct {
	Start string `json:"start"`
}

type selectValue struct {
	Name string `json:"name"`
}

type pageProperty struct {
	Title    []richText   `json:"title"`
	RichText []richText   `json:"rich_text"`
	Date     *dateValue   `json:"date"`
	Select   *selectValue `json:"select"`
}

type page struct {
	Id         string                  `json:"id"`
	Properties map[string]pageProperty `json:"properties"`
}

type queryResponse struct {
	Results []page `json:"results"`
}

type notionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

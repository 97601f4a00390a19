package model

type PostDetailed struct {
	Post     *Post     `json:"post,omitempty"`
	Author   *User     `json:"author,omitempty"`
	Category *Category `json:"category,omitempty"`
	Location *Location `json:"location,omitempty"`
}

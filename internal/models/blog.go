package models

type Blog struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	Category      string `json:"category"`
	Author        string `json:"author"`
	Date          string `json:"date"`
	FeaturedImage string `json:"featuredImage"`
}

package domain

// Section is a titled run of consecutive list items, shown as one tab
type Section struct {
	Title string `toml:"title"`
	Count int    `toml:"count"`
}

// SectionSizes returns the item count of each section, in order
func SectionSizes(sections []Section) []int {
	sizes := make([]int, len(sections))
	for i, s := range sections {
		sizes[i] = s.Count
	}
	return sizes
}

// SectionTitles returns the title of each section, in order
func SectionTitles(sections []Section) []string {
	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	return titles
}

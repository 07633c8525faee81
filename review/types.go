package review

// Article is a review article candidate found by search.
// Content is empty until the article body has been fetched.
type Article struct {
	Title   string
	Link    string
	Source  string
	Content string
}

// dedupeByLink drops articles whose link was already seen, preserving order.
func dedupeByLink(articles []Article) []Article {
	seen := make(map[string]bool, len(articles))
	unique := make([]Article, 0, len(articles))
	for _, article := range articles {
		if seen[article.Link] {
			continue
		}
		seen[article.Link] = true
		unique = append(unique, article)
	}
	return unique
}

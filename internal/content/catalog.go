package content

import (
	"github.com/sahilm/fuzzy"

	"github.com/karthik1105235/admybrand-dashboard/internal/models"
)

// Catalog is the fixed resources/blog library; there is no CMS behind it.
type Catalog struct {
	posts []models.Resource
}

var categoryOrder = []struct{ id, name string }{
	{"all", "All"},
	{"analytics", "Analytics"},
	{"marketing", "Marketing"},
	{"tutorials", "Tutorials"},
}

func NewCatalog() *Catalog {
	return &Catalog{posts: defaultPosts}
}

// Categories lists the filter chips with live counts.
func (c *Catalog) Categories() []models.ResourceCategory {
	out := make([]models.ResourceCategory, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		n := 0
		for _, p := range c.posts {
			if cat.id == "all" || p.Category == cat.id {
				n++
			}
		}
		out = append(out, models.ResourceCategory{ID: cat.id, Name: cat.name, Count: n})
	}
	return out
}

// List filters by category ("" and "all" mean everything), then fuzzy-ranks
// by title when a query is given. Without a query, catalog order is kept.
func (c *Catalog) List(category, query string) []models.Resource {
	var pool []models.Resource
	for _, p := range c.posts {
		if category == "" || category == "all" || p.Category == category {
			pool = append(pool, p)
		}
	}
	if query == "" {
		return pool
	}
	matches := fuzzy.FindFrom(query, titles(pool))
	out := make([]models.Resource, 0, len(matches))
	for _, m := range matches {
		out = append(out, pool[m.Index])
	}
	return out
}

type titles []models.Resource

func (t titles) Len() int            { return len(t) }
func (t titles) String(i int) string { return t[i].Title }

var defaultPosts = []models.Resource{
	{
		ID:       1,
		Title:    "10 Analytics Metrics Every Business Should Track",
		Excerpt:  "Discover the essential metrics that drive business growth and how to implement them effectively.",
		Category: "analytics",
		Type:     "article",
		ReadTime: "5 min read",
		Author:   "Sarah Johnson",
		Date:     "2024-01-15",
		Featured: true,
	},
	{
		ID:       2,
		Title:    "Advanced Data Visualization Techniques",
		Excerpt:  "Learn how to create compelling charts and graphs that tell your data story effectively.",
		Category: "tutorials",
		Type:     "video",
		ReadTime: "12 min watch",
		Author:   "Mike Chen",
		Date:     "2024-01-12",
	},
	{
		ID:       3,
		Title:    "Marketing ROI: How to Measure Success",
		Excerpt:  "A comprehensive guide to measuring and optimizing your marketing return on investment.",
		Category: "marketing",
		Type:     "article",
		ReadTime: "8 min read",
		Author:   "Emily Davis",
		Date:     "2024-01-10",
	},
	{
		ID:       4,
		Title:    "Real-time Analytics Implementation",
		Excerpt:  "Step-by-step guide to implementing real-time analytics in your application.",
		Category: "tutorials",
		Type:     "article",
		ReadTime: "15 min read",
		Author:   "Alex Rodriguez",
		Date:     "2024-01-08",
	},
	{
		ID:       5,
		Title:    "Customer Journey Analytics",
		Excerpt:  "Understanding your customer's path to purchase through advanced analytics.",
		Category: "analytics",
		Type:     "video",
		ReadTime: "18 min watch",
		Author:   "Lisa Wang",
		Date:     "2024-01-05",
	},
	{
		ID:       6,
		Title:    "Social Media Analytics Deep Dive",
		Excerpt:  "Advanced techniques for analyzing social media performance and engagement.",
		Category: "marketing",
		Type:     "article",
		ReadTime: "10 min read",
		Author:   "David Kim",
		Date:     "2024-01-03",
	},
}

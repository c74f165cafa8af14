package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelierdahl/atelier-go/internal/domain"
)

// NewSeededStore returns a store pre-filled with demo catalog data, used when
// the service runs with STORAGE_DRIVER=memory.
func NewSeededStore() *Store {
	s := NewStore()

	now := time.Now().UTC()

	silverRing := domain.CourseType{
		ID:              s.allocID(),
		Name:            "Silver Ring Workshop",
		Description:     "Forge and polish your own sterling silver ring in one afternoon.",
		Price:           decimal.RequireFromString("89.00"),
		Duration:        "4 hours",
		MaxParticipants: 6,
		MinAge:          14,
		Materials:       []string{"sterling silver", "polishing kit"},
		Requirements:    "No prior experience needed.",
		ImageURL:        "/images/courses/silver-ring.jpg",
	}
	s.courseTypes[silverRing.ID] = silverRing

	waxCarving := domain.CourseType{
		ID:              s.allocID(),
		Name:            "Wax Carving Basics",
		Description:     "Carve a pendant in jeweler's wax, ready for casting.",
		Price:           decimal.RequireFromString("65.00"),
		Duration:        "3 hours",
		MaxParticipants: 8,
		MinAge:          16,
		Materials:       []string{"carving wax", "files", "saw blades"},
		Requirements:    "Steady hands help.",
		ImageURL:        "/images/courses/wax-carving.jpg",
	}
	s.courseTypes[waxCarving.ID] = waxCarving

	for i, ct := range []domain.CourseType{silverRing, waxCarving} {
		c := domain.Course{
			ID:              s.allocID(),
			CourseTypeID:    ct.ID,
			Title:           ct.Name,
			Date:            now.AddDate(0, 0, 14+7*i).Truncate(24 * time.Hour),
			StartTime:       "10:00",
			EndTime:         "14:00",
			MaxParticipants: ct.MaxParticipants,
			AvailableSpots:  ct.MaxParticipants,
			Location:        "Atelier workshop, Bergmannstr. 12",
			Instructor:      "Maren",
			Status:          domain.CourseScheduled,
		}
		s.courses[c.ID] = c
	}

	products := []domain.Product{
		{
			Name:        "Hammered Silver Band",
			Description: "Hand-hammered sterling silver ring, matte finish.",
			Price:       decimal.RequireFromString("120.00"),
			Category:    "rings",
			ImageURL:    "/images/products/hammered-band.jpg",
			Available:   true,
		},
		{
			Name:        "Moonstone Pendant",
			Description: "Rainbow moonstone set in recycled silver.",
			Price:       decimal.RequireFromString("185.00"),
			Category:    "pendants",
			ImageURL:    "/images/products/moonstone-pendant.jpg",
			Available:   true,
		},
	}
	for i := range products {
		products[i].ID = s.allocID()
		products[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		s.products[products[i].ID] = products[i]
	}

	images := []domain.GalleryImage{
		{Title: "Cast silver leaves", Category: "castings", ImageURL: "/images/gallery/leaves.jpg"},
		{Title: "Workbench detail", Category: "studio", ImageURL: "/images/gallery/bench.jpg"},
	}
	for i := range images {
		images[i].ID = s.allocID()
		images[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		s.gallery[images[i].ID] = images[i]
	}

	return s
}

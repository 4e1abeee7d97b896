package domain

import "github.com/google/uuid"

// SeedProducts returns the fixed launch catalog. Each call assigns fresh ids;
// the caller is expected to insert the set at most once per store.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          uuid.NewString(),
			Name:        "Professional Logo Design",
			Description: "Get a custom professional logo designed for your brand. Perfect for businesses, startups, and personal projects.",
			Price:       25.0,
			Category:    "design",
			ImageURL:    "https://images.unsplash.com/photo-1705056509266-c80d38d564e4",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Art Drawings - Photo to Art",
			Description: "Transform your photos into stunning art pieces with various artistic styles available.",
			Price:       45.0,
			Category:    "art",
			ImageURL:    "https://images.pexels.com/photos/6231/marketing-color-colors-wheel.jpg",
			Options: map[string]any{
				"styles": []map[string]any{
					{"name": "Oil Painting", "description": "Timeless, textured, rich colors (Van Gogh, Rembrandt style)"},
					{"name": "Vector / Flat Design", "description": "Bold, clean shapes (perfect for logos, apps, infographics)"},
					{"name": "Anime / Manga", "description": "Japanese style (Naruto, Studio Ghibli, Demon Slayer)"},
					{"name": "Impressionism", "description": "Soft, light brushstrokes (Claude Monet's Water Lilies style)"},
					{"name": "Cyberpunk", "description": "Neon, futuristic, dystopian (Blade Runner vibe)"},
				},
			},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Video Editing - 1 Minute",
			Description: "Professional video editing for short form content, perfect for social media and marketing.",
			Price:       35.0,
			Category:    "video",
			ImageURL:    "https://images.unsplash.com/photo-1712904284384-4ac912d0c9d8",
			Options:     map[string]any{"duration": "1 minute"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Video Editing - 5 Minutes",
			Description: "Professional video editing for medium length content, ideal for tutorials and presentations.",
			Price:       75.0,
			Category:    "video",
			ImageURL:    "https://images.unsplash.com/photo-1712904284384-4ac912d0c9d8",
			Options:     map[string]any{"duration": "5 minutes"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Video Editing - 20+ Minutes",
			Description: "Professional video editing for long form content, perfect for documentaries and detailed presentations.",
			Price:       120.0,
			Category:    "video",
			ImageURL:    "https://images.unsplash.com/photo-1712904284384-4ac912d0c9d8",
			Options:     map[string]any{"duration": "20+ minutes"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Full Photoshop Course",
			Description: "Complete Adobe Photoshop course covering everything from basics to advanced techniques. Perfect for beginners and professionals.",
			Price:       149.99,
			Category:    "course",
			ImageURL:    "https://images.unsplash.com/photo-1626785774573-4b799315345d",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Full Adobe Premiere Course",
			Description: "Comprehensive Adobe Premiere Pro course for video editing mastery. Learn professional video editing from scratch.",
			Price:       199.99,
			Category:    "course",
			ImageURL:    "https://images.unsplash.com/photo-1609921212029-bb5a28e60960",
		},
	}
}

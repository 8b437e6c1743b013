package services

import "github.com/dmitrijs2005/eventhub/internal/models"

// DemoEvents returns the events installed into an empty store.
func DemoEvents() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "Tech Conference 2024",
			Description: "Join us for the biggest tech conference of the year featuring leading experts in AI, Web Development, and Cloud Computing.",
			Date:        "2024-06-15",
			Location:    "San Francisco, CA",
			ImageURL:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87?auto=format&fit=crop&q=80",
			Attendees:   []string{},
		},
		{
			ID:          "2",
			Title:       "Summer Music Festival",
			Description: "A weekend of amazing live performances, food, and art installations in the heart of the city.",
			Date:        "2024-07-20",
			Location:    "Austin, TX",
			ImageURL:    "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?auto=format&fit=crop&q=80",
			Attendees:   []string{},
		},
		{
			ID:          "3",
			Title:       "Food & Wine Expo",
			Description: "Experience culinary excellence with tastings from top chefs and wineries from around the world.",
			Date:        "2024-08-10",
			Location:    "New York, NY",
			ImageURL:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&q=80",
			Attendees:   []string{},
		},
	}
}

package services

import (
	"errors"

	"github.com/zapzocket/studio/internal/model"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleService serves the editorial content: pet-care articles and the
// home page testimonials. Content is seeded in memory; there is no
// backend endpoint for it.
type ArticleService struct {
	articles     []model.Article
	testimonials []model.Testimonial
}

func NewArticleService() *ArticleService {
	return &ArticleService{
		articles:     seedArticles(),
		testimonials: seedTestimonials(),
	}
}

// All returns every article, newest first.
func (s *ArticleService) All() []model.Article {
	out := make([]model.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Latest returns up to n articles for the home page.
func (s *ArticleService) Latest(n int) []model.Article {
	all := s.All()
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// BySlug finds one article by its URL slug.
func (s *ArticleService) BySlug(slug string) (model.Article, error) {
	for _, a := range s.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return model.Article{}, ErrArticleNotFound
}

// Testimonials returns the home page customer quotes.
func (s *ArticleService) Testimonials() []model.Testimonial {
	out := make([]model.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out
}

func seedArticles() []model.Article {
	return []model.Article{
		{
			ID:        "a1",
			Title:     "Cat Feeding Guide: Keeping Your Furry Friend Healthy",
			Image:     "https://placehold.co/600x400.png",
			ImageHint: "cat eating food",
			Summary:   "Proper nutrition is one of the biggest factors in a cat's health and lifespan. We cover dietary needs by age, commercial versus home-made food, portion sizes and feeding schedules, plus the foods cats must never eat.",
			Slug:      "cat-feeding-guide",
			Content:   "Proper nutrition is one of the biggest factors in a cat's health and lifespan. Kittens need frequent small meals rich in protein, adult cats do best on two measured meals a day, and senior cats often need softer food with fewer calories. Whether you feed commercial or home-made food, always provide fresh water and avoid onions, garlic, chocolate and raw dough, all of which are toxic to cats.",
			Category:  "cat",
			Date:      "2025-07-14",
		},
		{
			ID:        "a2",
			Title:     "Daily Walks: How Much Exercise Does Your Dog Need?",
			Image:     "https://placehold.co/600x400.png",
			ImageHint: "dog walking leash",
			Summary:   "From toy breeds to working dogs, exercise needs vary enormously. Learn how to read your dog's energy level and build a walking routine that keeps both of you happy.",
			Slug:      "dog-exercise-guide",
			Content:   "A bored dog is a destructive dog. Small breeds are usually fine with two short walks a day, while shepherds and retrievers need an hour or more of real activity. Watch for pacing, chewing and excessive barking as signs your dog needs more exercise, and build up distance gradually for puppies and older dogs.",
			Category:  "dog",
			Date:      "2025-06-02",
		},
		{
			ID:        "a3",
			Title:     "Setting Up Your First Aquarium the Right Way",
			Image:     "https://placehold.co/600x400.png",
			ImageHint: "aquarium fish tank",
			Summary:   "Cycling the tank before adding fish is the single most important step new aquarists skip. A practical checklist for tank size, filtration, heating and the nitrogen cycle.",
			Slug:      "first-aquarium-setup",
			Content:   "Start with the largest tank you can accommodate; bigger tanks are more stable, not harder. Run the filter for two to four weeks before adding fish so nitrifying bacteria can establish, test for ammonia and nitrite, and introduce fish a few at a time. A heater and thermometer are mandatory for tropical species.",
			Category:  "fish",
			Date:      "2025-04-21",
		},
	}
}

func seedTestimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID:         "t1",
			Name:       "Nazanin Mohammadi",
			Avatar:     "https://placehold.co/48x48.png",
			AvatarHint: "woman smiling",
			Rating:     5,
			Quote:      "Shopping at Heyvan Kala was genuinely satisfying. Quality products, great packaging, and my cat adores the toys I ordered.",
		},
		{
			ID:         "t2",
			Name:       "Amir Hosseini",
			Avatar:     "https://placehold.co/48x48.png",
			AvatarHint: "man face",
			Rating:     4.5,
			Quote:      "As someone with three dogs I am always after quality supplies. Heyvan Kala has good variety and better prices than most places.",
		},
		{
			ID:         "t3",
			Name:       "Maryam Rezaei",
			Avatar:     "https://placehold.co/48x48.png",
			AvatarHint: "woman glasses",
			Rating:     5,
			Quote:      "The care articles taught me a lot about looking after my parrot, and the free advice from support was really valuable.",
		},
	}
}

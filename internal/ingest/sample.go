package ingest

import (
	"context"
)

// SampleDocuments returns the built-in demo catalog. The records deliberately keep
// the mixed field shapes seen in real data so they exercise Decode.
func SampleDocuments() []Document {
	return []Document{
		{ID: "1", Data: map[string]any{
			"name": "Sunrise PG", "price": 8000, "location": "Sector 15, Chandigarh",
			"gender": "Male", "food": true, "verified": true, "rating": 4.5, "distance": 2.5,
			"images":      []any{"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=400"},
			"amenities":   []any{"WiFi", "AC", "Laundry", "Parking"},
			"description": "Well-maintained PG with all modern amenities",
			"owner":       "Raj Kumar", "contact": "+91 98765 43210",
		}},
		{ID: "2", Data: map[string]any{
			"name": "Golden Heights PG", "price": 12000, "location": "Civil Lines, Dehradun",
			"gender": "Female", "food": true, "verified": true, "rating": 4.2, "distance": 1.8,
			"images":      []any{"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=400"},
			"amenities":   []any{"WiFi", "AC", "Mess", "Security"},
			"description": "Premium PG for working professionals",
			"owner":       "Priya Sharma", "contact": "+91 87654 32109",
		}},
		{ID: "3", Data: map[string]any{
			"name": "Student Haven", "price": 6500, "location": "University Area, Kota",
			"gender": "Male", "food": false, "verified": true, "rating": 4.0, "distance": 3.2,
			"images":      []any{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=400"},
			"amenities":   []any{"WiFi", "Study Room", "Laundry"},
			"description": "Budget-friendly PG near coaching institutes",
			"owner":       "Amit Singh", "contact": "+91 76543 21098",
		}},
		{ID: "4", Data: map[string]any{
			"name": "Comfort Zone PG", "price": 10000, "location": "Malviya Nagar, Bhopal",
			"gender": "Female", "food": true, "verified": true, "rating": 4.3, "distance": 1.5,
			"images":      []any{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400"},
			"amenities":   []any{"WiFi", "AC", "Gym", "Mess"},
			"description": "Comfortable living with home-like atmosphere",
			"owner":       "Sunita Devi", "contact": "+91 65432 10987",
		}},
		{ID: "5", Data: map[string]any{
			"name": "Elite Residency", "price": 15000, "location": "Koregaon Park, Pune",
			"gender": "Male", "food": true, "verified": true, "rating": 4.7, "distance": 4.0,
			"images":      []any{"https://images.unsplash.com/photo-1501183638710-841dd1904471?w=400"},
			"amenities":   []any{"WiFi", "AC", "Swimming Pool", "Gym"},
			"description": "Luxury PG with premium facilities",
			"owner":       "Vikram Patel", "contact": "+91 54321 09876",
		}},
		{ID: "6", Data: map[string]any{
			"name": "Urban Nest PG", "price": 9500, "location": "Laxmi Nagar, Delhi",
			"gender": "Female", "food": true, "verified": true, "rating": 4.1, "distance": 2.8,
			"images":      []any{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=400"},
			"amenities":   []any{"WiFi", "AC", "Laundry", "Kitchen"},
			"description": "Modern PG with excellent connectivity",
			"owner":       "Neha Gupta", "contact": "+91 43210 98765",
		}},
		{ID: "krishna-boys", Data: map[string]any{
			"name": "Krishna Boys PG", "location": "Jalandhar, Punjab", "price": "4500",
			"gender": "Male", "foodIncluded": true, "distanceFromCollege": "1.2 km",
			"contact": "+91 9876543210", "verified": true, "rating": 4.2,
			"images": []any{
				"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=400",
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=400",
			},
			"amenities": []any{"WiFi", "Laundry", "Security", "Common Room"},
		}},
		{ID: "shakti-girls", Data: map[string]any{
			"name": "Shakti Girls Hostel", "location": "Indore, Madhya Pradesh", "price": "5000",
			"gender": "Female", "foodIncluded": true, "distanceFromCollege": "0.8 km",
			"contact": "+91 9123456780", "verified": true, "rating": 4.5,
			"images": []any{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400",
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=400",
			},
			"amenities": []any{"WiFi", "AC", "Food", "Security", "Gym"},
		}},
		{ID: "modern-coliving", Data: map[string]any{
			"name": "Modern Co-living Space", "location": "Bhopal, Madhya Pradesh", "price": "6000",
			"gender": "Mixed", "foodIncluded": false, "distanceFromCollege": "2.1 km",
			"contact": "+91 9876543211", "verified": true, "rating": 4.7,
			"images": []any{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=400",
				"https://images.unsplash.com/photo-1571624436279-b272aff752b5?w=400",
			},
			"amenities": []any{"WiFi", "AC", "Parking", "Security", "Rooftop"},
		}},
	}
}

// StaticSource serves a fixed set of documents. With no documents it serves the sample catalog.
type StaticSource struct {
	docs []Document
}

// NewStaticSource creates a source over docs, or over SampleDocuments when docs is empty.
func NewStaticSource(docs ...Document) *StaticSource {
	if len(docs) == 0 {
		docs = SampleDocuments()
	}
	return &StaticSource{docs: docs}
}

// Name identifies the source in logs.
func (s *StaticSource) Name() string {
	return "sample"
}

// FetchDocuments returns a copy of the documents.
func (s *StaticSource) FetchDocuments(ctx context.Context) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

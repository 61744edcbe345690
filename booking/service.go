package booking

import "fmt"

// Service is a bookable home-repair service
type Service struct {
	ID    int
	Name  string
	Price int // USD, shown on the service button
}

// Label renders the service the way the service list shows it
func (s Service) Label() string {
	return fmt.Sprintf("%s - $%d", s.Name, s.Price)
}

var catalog = []Service{
	{ID: 1, Name: "Plumbing", Price: 0},
	{ID: 2, Name: "Electrical", Price: 0},
	{ID: 3, Name: "Carpentry", Price: 0},
}

// Catalog returns the fixed list of services offered
func Catalog() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog service by id
func Lookup(id int) (Service, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

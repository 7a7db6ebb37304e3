package catalog

import "missingfit/internal/domain"

// Selection is the item open in the detail view and the image it shows.
// The zero value has nothing selected.
type Selection struct {
	item        *domain.Item
	activeImage string
}

// Select opens it and shows its first image, discarding any earlier choice.
func (s *Selection) Select(it domain.Item) {
	s.item = &it
	s.activeImage = it.PrimaryImage()
}

func (s *Selection) Clear() {
	s.item = nil
	s.activeImage = ""
}

// SetActiveImage switches the displayed image. It refuses when nothing is
// selected or url is not one of the selected item's images.
func (s *Selection) SetActiveImage(url string) bool {
	if s.item == nil {
		return false
	}
	for _, img := range s.item.Images {
		if img == url {
			s.activeImage = url
			return true
		}
	}
	return false
}

func (s Selection) Item() (domain.Item, bool) {
	if s.item == nil {
		return domain.Item{}, false
	}
	return *s.item, true
}

func (s Selection) ActiveImage() string { return s.activeImage }

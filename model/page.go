package model

// Page is the Spring Data page envelope the backend wraps every listing in.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Last             bool  `json:"last"`
	First            bool  `json:"first"`
	Empty            bool  `json:"empty"`
	TotalPages       int   `json:"totalPages"`
	TotalElements    int64 `json:"totalElements"`
	Size             int   `json:"size"`
	Number           int   `json:"number"`
	NumberOfElements int   `json:"numberOfElements"`
}

// HasPrevious reports whether a page exists before this one.
func (p Page[T]) HasPrevious() bool { return !p.First && p.Number > 0 }

// HasNext reports whether a page exists after this one.
func (p Page[T]) HasNext() bool { return !p.Last && p.Number+1 < p.TotalPages }

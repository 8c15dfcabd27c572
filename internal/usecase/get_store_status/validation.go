package get_store_status

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BrandSlug == "" {
		return fmt.Errorf("%w: brand slug is required", ErrInvalidInput)
	}

	// Координаты передаются только парой
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be supplied together", ErrInvalidInput)
	}

	if req.Latitude != nil {
		if *req.Latitude < -90 || *req.Latitude > 90 {
			return fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
		}
		if *req.Longitude < -180 || *req.Longitude > 180 {
			return fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
		}
	}

	return nil
}

package queries

import "workshop/internal/core/domain/model/kernel"

// displayName renders a stored name the way listings show it. Rows that no
// longer form a valid name are shown as stored.
func displayName(first, last, patronymic string) string {
	name, err := kernel.NewPersonName(first, last, patronymic)
	if err != nil {
		return first + " " + last
	}
	return name.Short()
}

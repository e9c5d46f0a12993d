package handlers

import (
	"fmt"
	"time"

	"booksmart/internal/models"

	"gorm.io/gorm"
)

// missingRefsError reports referenced ids that did not resolve
type missingRefsError struct {
	kind string
	want int
	got  int
}

func (e missingRefsError) Error() string {
	return fmt.Sprintf("one or more %s not found: want %d, got %d", e.kind, e.want, e.got)
}

// loadParticipants resolves every referenced participant id. Any id that
// does not resolve makes the whole lookup fail.
func loadParticipants(db *gorm.DB, ids []uint) ([]models.Participant, error) {
	if len(ids) == 0 {
		return []models.Participant{}, nil
	}
	var participants []models.Participant
	if err := db.Where("id IN ?", ids).Find(&participants).Error; err != nil {
		return nil, err
	}
	if len(participants) != len(ids) {
		return nil, missingRefsError{kind: "participants", want: len(ids), got: len(participants)}
	}
	return orderParticipants(participants, ids), nil
}

// loadCategories resolves every referenced category id
func loadCategories(db *gorm.DB, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}
	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, missingRefsError{kind: "categories", want: len(ids), got: len(categories)}
	}
	return orderCategories(categories, ids), nil
}

// orderParticipants returns the rows in the order the ids were supplied,
// so association sets read back in insertion order.
func orderParticipants(rows []models.Participant, ids []uint) []models.Participant {
	byID := make(map[uint]models.Participant, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	ordered := make([]models.Participant, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}

func orderCategories(rows []models.Category, ids []uint) []models.Category {
	byID := make(map[uint]models.Category, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	ordered := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}

// joinPair is one row read back from an association join table
type joinPair struct {
	OwnerID   uint
	RelatedID uint
}

// joinOrder returns, for each owner id, the related ids in join-row
// insertion order. Preloads come back in related-table id order, so read
// handlers use this to restore the order the associations were attached in.
func joinOrder(db *gorm.DB, table, ownerCol, relatedCol string, ownerIDs []uint) (map[uint][]uint, error) {
	if len(ownerIDs) == 0 {
		return map[uint][]uint{}, nil
	}
	var rows []joinPair
	err := db.Table(table).
		Select(ownerCol+" AS owner_id, "+relatedCol+" AS related_id").
		Where(ownerCol+" IN ?", ownerIDs).
		Order("id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	ordered := make(map[uint][]uint, len(ownerIDs))
	for _, row := range rows {
		ordered[row.OwnerID] = append(ordered[row.OwnerID], row.RelatedID)
	}
	return ordered, nil
}

// parseDate parses a YYYY-MM-DD field
func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(models.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: expected format YYYY-MM-DD", field)
	}
	return t, nil
}

// parseTimeOfDay validates an HH:MM:SS field and returns it unchanged
func parseTimeOfDay(value, field string) (string, error) {
	if _, err := time.Parse(models.TimeFormat, value); err != nil {
		return "", fmt.Errorf("invalid %s: expected format HH:MM:SS", field)
	}
	return value, nil
}

// parseDateTime parses a YYYY-MM-DD HH:MM:SS field
func parseDateTime(value, field string) (time.Time, error) {
	t, err := time.Parse(models.DateTimeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: expected format YYYY-MM-DD HH:MM:SS", field)
	}
	return t, nil
}

package specification

import "gorm.io/gorm"

// ByPlate matches a truck plate exactly.
type ByPlate struct {
	Plate string
}

func (s ByPlate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("plate = ?", s.Plate)
}

// PlateContains is the substring fallback used when no exact plate match
// exists. First row in storage order wins; the tie-break among multiple
// substring matches is intentionally positional.
type PlateContains struct {
	Fragment string
}

func (s PlateContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("plate LIKE ?", "%"+s.Fragment+"%")
}

// ByEmail filters users by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByName filters by exact name.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// NameContains is the lenient lookup used by the chatbot executor when
// resolving client/product names mentioned in free text.
type NameContains struct {
	Fragment string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name LIKE ?", "%"+s.Fragment+"%")
}

// ByCategory filters knowledge chunks by document category.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"smart-warehouse-be/internal/model"
	"smart-warehouse-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the relational schema with the demo warehouse dataset: five depots
// with their managers, the Greek-letter client roster with Tunisian-plated
// trucks, the product catalog and a handful of orders in each lifecycle
// state. Safe to re-run; existing rows are skipped by natural key.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// gen_random_uuid needs pgcrypto; the knowledge store needs pgvector.
	db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto")
	db.Exec("CREATE EXTENSION IF NOT EXISTS vector")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Manager{},
		&model.Depot{},
		&model.Client{},
		&model.Truck{},
		&model.Product{},
		&model.Order{},
		&model.KnowledgeChunk{},
		&model.ArrivalLog{},
	); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}
	color.Green("✔ Schema migrated")

	seedManagersAndDepots(db)
	clientIds := seedClients(db)
	seedTrucks(db, clientIds)
	productIds := seedProducts(db)
	seedOrders(db, clientIds, productIds)
	seedStaff(db)

	color.Green("✔ Warehouse dataset ready")
}

func seedManagersAndDepots(db *gorm.DB) {
	depots := []struct {
		Manager string
		Depot   string
		Address string
	}{
		{"Gérard Dupont", "Dépôt Nord", "Ariana"},
		{"Sami Trabelsi", "Dépôt Sud", "Sfax"},
		{"Nour Gharbi", "Dépôt Est", "Sousse"},
		{"Ali Miled", "Dépôt Ouest", "Le Kef"},
		{"Sonia Lahmar", "Dépôt Central", "Tunis"},
	}

	for _, d := range depots {
		var existing model.Depot
		if err := db.Where("name = ?", d.Depot).First(&existing).Error; err == nil {
			continue
		}

		manager := model.Manager{Id: uuid.New(), Name: d.Manager}
		if err := db.Create(&manager).Error; err != nil {
			log.Printf("Error creating manager %s: %v", d.Manager, err)
			continue
		}
		depot := model.Depot{Id: uuid.New(), Name: d.Depot, Address: d.Address, ManagerId: manager.Id}
		if err := db.Create(&depot).Error; err != nil {
			log.Printf("Error creating depot %s: %v", d.Depot, err)
			continue
		}
		color.Cyan("  + depot %s (%s)", d.Depot, d.Manager)
	}
}

func seedClients(db *gorm.DB) map[string]uuid.UUID {
	names := []string{
		"Client Alpha", "Client Beta", "Client Gamma", "Client Delta",
		"Client Epsilon", "Client Zeta", "Client Eta", "Client Theta",
		"Client Omicron", "Client Omega",
	}
	streets := []string{
		"Rue Carthage", "Rue Bourguiba", "Rue Monastir", "Rue Bizerte",
		"Rue El Mourouj", "Rue Ariana", "Rue Sfax", "Rue Sousse",
		"Rue Béja", "Rue Tataouine",
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	ids := make(map[string]uuid.UUID, len(names))

	for i, name := range names {
		var existing model.Client
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			ids[name] = existing.Id
			continue
		}

		user := model.User{
			Id:       uuid.New(),
			Email:    strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@mail.com",
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating user for %s: %v", name, err)
			continue
		}

		client := model.Client{
			Id:      uuid.New(),
			Name:    name,
			Address: streets[i],
			Phone:   fmt.Sprintf("200100%02d", i+1),
			UserId:  user.Id,
		}
		if err := db.Create(&client).Error; err != nil {
			log.Printf("Error creating client %s: %v", name, err)
			continue
		}
		ids[name] = client.Id
		color.Cyan("  + client %s", name)
	}
	return ids
}

func seedTrucks(db *gorm.DB, clientIds map[string]uuid.UUID) {
	trucks := []struct {
		Type   string
		Plate  string
		Client string
	}{
		{"Camion benne", "145 تونس 4862", "Client Alpha"},
		{"Camion plateau", "302 تونس 1598", "Client Beta"},
		{"Camion frigorifique", "137 تونس 7481", "Client Gamma"},
		{"Camion citerne", "410 تونس 2649", "Client Delta"},
		{"Camion fourgon", "302-502-TUN", "Client Epsilon"},
		{"Camion fourgon", "111 تونس 8801", "Client Eta"},
	}

	for _, t := range trucks {
		clientId, ok := clientIds[t.Client]
		if !ok {
			continue
		}
		var existing model.Truck
		if err := db.Where("plate = ?", t.Plate).First(&existing).Error; err == nil {
			continue
		}
		truck := model.Truck{Id: uuid.New(), Type: t.Type, Plate: t.Plate, ClientId: clientId}
		if err := db.Create(&truck).Error; err != nil {
			log.Printf("Error creating truck %s: %v", t.Plate, err)
			continue
		}
		color.Cyan("  + truck %s (%s)", t.Plate, t.Client)
	}
}

func seedProducts(db *gorm.DB) map[string]uuid.UUID {
	products := []model.Product{
		{Name: "Cartons A4", Stock: 500, Price: 15.00},
		{Name: "Claviers USB", Stock: 120, Price: 35.00},
		{Name: "Souris Optiques", Stock: 140, Price: 25.00},
		{Name: "Toners", Stock: 80, Price: 120.00},
		{Name: "Écrans LED 24 pouces", Stock: 60, Price: 300.00},
		{Name: "Climatiseurs portables", Stock: 10, Price: 1450.00},
	}

	ids := make(map[string]uuid.UUID, len(products))
	for _, p := range products {
		var existing model.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			ids[p.Name] = existing.Id
			continue
		}
		p.Id = uuid.New()
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating product %s: %v", p.Name, err)
			continue
		}
		ids[p.Name] = p.Id
		color.Cyan("  + product %s", p.Name)
	}
	return ids
}

func seedOrders(db *gorm.DB, clientIds, productIds map[string]uuid.UUID) {
	var central model.Depot
	if err := db.Where("name = ?", "Dépôt Central").First(&central).Error; err != nil {
		log.Printf("Error: Dépôt Central missing, skipping orders: %v", err)
		return
	}

	orders := []struct {
		Client  string
		Product string
		Date    string
		Status  string
	}{
		{"Client Alpha", "Souris Optiques", "2025-11-10", "terminée"},
		{"Client Beta", "Claviers USB", "2025-12-03", "en cours"},
		{"Client Gamma", "Écrans LED 24 pouces", "2025-10-05", "en attente"},
		{"Client Epsilon", "Toners", "2025-11-25", "en attente"},
		{"Client Omicron", "Climatiseurs portables", "2025-11-13", "en cours"},
		{"Client Omega", "Cartons A4", "2025-10-23", "terminée"},
	}

	for _, o := range orders {
		clientId, okC := clientIds[o.Client]
		productId, okP := productIds[o.Product]
		if !okC || !okP {
			continue
		}

		var count int64
		db.Model(&model.Order{}).Where("client_id = ? AND product_id = ?", clientId, productId).Count(&count)
		if count > 0 {
			continue
		}

		date, _ := time.Parse("2006-01-02", o.Date)
		order := model.Order{
			Id:        uuid.New(),
			ClientId:  clientId,
			ProductId: productId,
			DepotId:   central.Id,
			OrderDate: date,
			Status:    o.Status,
		}
		if err := db.Create(&order).Error; err != nil {
			log.Printf("Error creating order for %s: %v", o.Client, err)
			continue
		}
		color.Cyan("  + order %s / %s (%s)", o.Client, o.Product, o.Status)
	}
}

func seedStaff(db *gorm.DB) {
	email := "admin@smartwarehouse.tn"
	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	staff := model.User{Id: uuid.New(), Email: email, Password: string(hash)}
	if err := db.Create(&staff).Error; err != nil {
		log.Printf("Error creating staff account: %v", err)
		return
	}
	color.Cyan("  + staff %s", email)
}

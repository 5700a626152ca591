package main

import (
	"log"
	"os"

	"github.com/DevDad-Main/ServIQ/internal/model"
	"github.com/DevDad-Main/ServIQ/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

const demoEmail = "demo@serviq.dev"

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

	color.Cyan("Seeding demo workspace for %s...", demoEmail)

	var existing model.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping...")
		return
	}

	user := model.User{
		Id:             uuid.New(),
		Email:          demoEmail,
		Name:           "Demo Owner",
		OrganizationId: "org_demo_serviq",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Error creating demo user: %v", err)
	}
	color.Green("Created user %s", user.Email)

	sourceUrl := "https://docs.serviq.dev"
	source := model.KnowledgeSource{
		Id:        uuid.New(),
		UserEmail: demoEmail,
		Type:      "website",
		Name:      "docs.serviq.dev",
		SourceUrl: &sourceUrl,
		Content:   "ServIQ helps small businesses answer support questions from their own knowledge base.",
		Status:    "active",
	}
	if err := db.Create(&source).Error; err != nil {
		log.Fatalf("Error creating demo knowledge source: %v", err)
	}
	color.Green("Created knowledge source %s", source.Name)

	section := model.Section{
		Id:            uuid.New(),
		UserEmail:     demoEmail,
		Name:          "General Support",
		Description:   "Answers to everyday product questions",
		Tone:          "friendly",
		AllowedTopics: datatypes.NewJSONSlice([]string{"billing", "product"}),
		BlockedTopics: datatypes.NewJSONSlice([]string{"legal"}),
		SourceIds:     datatypes.NewJSONSlice([]string{source.Id.String()}),
		Status:        "active",
	}
	if err := db.Create(&section).Error; err != nil {
		log.Fatalf("Error creating demo section: %v", err)
	}
	color.Green("Created section %s", section.Name)

	metadata := model.Metadata{
		Id:           uuid.New(),
		UserEmail:    demoEmail,
		BusinessName: "ServIQ Demo Co",
		WebsiteUrl:   "https://serviq.dev",
		ExternalLinks: datatypes.NewJSONType(map[string]string{
			"support": "https://serviq.dev/support",
		}),
	}
	if err := db.Create(&metadata).Error; err != nil {
		log.Fatalf("Error creating demo metadata: %v", err)
	}
	color.Green("Created metadata for %s", metadata.BusinessName)

	color.Cyan("Seeding completed!")
}

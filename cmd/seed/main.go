// Command seed wipes the database and loads a small demo dataset: three
// users, three groups, five posts and four comments. Intended for manual
// API exploration, not for production.
package main

import (
	"log"

	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/mkhalid11/openblog/backend/pkg/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := db.Gorm.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	log.Println("Clearing database...")
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := db.Gorm.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	log.Println("Creating users...")
	admin := createUser(db.Gorm, "admin", "admin")
	user1 := createUser(db.Gorm, "testuser", "testpass123")
	user2 := createUser(db.Gorm, "author", "authorpass123")
	log.Printf("Created users: %s, %s, %s", admin.Username, user1.Username, user2.Username)

	log.Println("Creating groups...")
	group1 := createGroup(db.Gorm, "Test group", "test", "A test group for trying out the API")
	group2 := createGroup(db.Gorm, "Mathematics", "math", "Posts about mathematics")
	group3 := createGroup(db.Gorm, "Programming", "coding", "Posts about programming and development")
	log.Printf("Created groups: %s, %s, %s", group1.Title, group2.Title, group3.Title)

	log.Println("Creating posts...")
	post1 := createPost(db.Gorm, "First test post from testuser", user1, &group1.ID)
	post2 := createPost(db.Gorm, "Second test post from author", user2, &group2.ID)
	post3 := createPost(db.Gorm, "A post about Go from testuser", user1, &group3.ID)
	createPost(db.Gorm, "A post about web APIs from author", user2, &group3.ID)
	createPost(db.Gorm, "A post without a group from testuser", user1, nil)
	log.Println("Created posts: 5")

	log.Println("Creating comments...")
	createComment(db.Gorm, "Great post!", user2, post1)
	createComment(db.Gorm, "Thanks for the info", user1, post2)
	createComment(db.Gorm, "Go is the best language!", user2, post3)
	createComment(db.Gorm, "Fully agree", user1, post3)
	log.Println("Created comments: 4")

	log.Println("=== Demo data loaded ===")
	log.Println("Credentials:")
	log.Println("  admin / admin")
	log.Println("  testuser / testpass123")
	log.Println("  author / authorpass123")
}

func createUser(db *gorm.DB, username, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	user := &models.User{Username: username, Password: string(hash)}
	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

func createGroup(db *gorm.DB, title, slug, description string) *models.Group {
	group := &models.Group{Title: title, Slug: slug, Description: description}
	if err := db.Create(group).Error; err != nil {
		log.Fatalf("Failed to create group %s: %v", slug, err)
	}
	return group
}

func createPost(db *gorm.DB, text string, author *models.User, groupID *uint) *models.Post {
	post := &models.Post{Text: text, AuthorID: author.ID, GroupID: groupID}
	if err := db.Create(post).Error; err != nil {
		log.Fatalf("Failed to create post: %v", err)
	}
	return post
}

func createComment(db *gorm.DB, text string, author *models.User, post *models.Post) {
	comment := &models.Comment{Text: text, AuthorID: author.ID, PostID: post.ID}
	if err := db.Create(comment).Error; err != nil {
		log.Fatalf("Failed to create comment: %v", err)
	}
}

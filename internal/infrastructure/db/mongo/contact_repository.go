package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contactdesk/contacts-system/internal/core/domain"
)

const collectionContacts = "contacts"

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(collectionContacts)}
}

// mongoContact mirrors domain.Contact but keeps the id as an ObjectID so the
// driver generates it on insert.
type mongoContact struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	UserID       string               `bson:"user_id"`
	FirstName    string               `bson:"first_name"`
	LastName     string               `bson:"last_name"`
	Email        string               `bson:"email"`
	MotherName   string               `bson:"mother_name"`
	BirthDate    string               `bson:"birth_date"`
	TajNumber    string               `bson:"taj_number"`
	TaxID        string               `bson:"tax_id"`
	PhoneNumbers []domain.PhoneNumber `bson:"phone_numbers"`
	Addresses    []domain.Address     `bson:"addresses"`
	CreatedAt    int64                `bson:"created_at"`
	UpdatedAt    int64                `bson:"updated_at"`
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]domain.Contact, error) {
	return r.find(ctx, bson.M{})
}

func (r *ContactRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Contact, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *ContactRepository) find(ctx context.Context, filter bson.M) ([]domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find contacts: %w", err)
	}
	defer cur.Close(ctx)

	contacts := []domain.Contact{}
	for cur.Next(ctx) {
		var mc mongoContact
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		contacts = append(contacts, *toDomainContact(&mc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContactNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoContact
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return toDomainContact(&mc), nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoContact(contact)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	created := *contact
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	oid, err := primitive.ObjectIDFromHex(contact.ID)
	if err != nil {
		return domain.ErrContactNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoContact(contact)
	update := bson.M{"$set": bson.M{
		"first_name":    doc.FirstName,
		"last_name":     doc.LastName,
		"email":         doc.Email,
		"mother_name":   doc.MotherName,
		"birth_date":    doc.BirthDate,
		"taj_number":    doc.TajNumber,
		"tax_id":        doc.TaxID,
		"phone_numbers": doc.PhoneNumbers,
		"addresses":     doc.Addresses,
		"updated_at":    doc.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrContactNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("delete contacts by user: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the owner index used by per-user queries and the cascade.
func (r *ContactRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func toMongoContact(c *domain.Contact) *mongoContact {
	return &mongoContact{
		UserID:       c.UserID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		MotherName:   c.MotherName,
		BirthDate:    c.BirthDate,
		TajNumber:    c.TajNumber,
		TaxID:        c.TaxID,
		PhoneNumbers: c.PhoneNumbers,
		Addresses:    c.Addresses,
		CreatedAt:    c.CreatedAt.Unix(),
		UpdatedAt:    c.UpdatedAt.Unix(),
	}
}

func toDomainContact(mc *mongoContact) *domain.Contact {
	return &domain.Contact{
		ID:           mc.ID.Hex(),
		UserID:       mc.UserID,
		FirstName:    mc.FirstName,
		LastName:     mc.LastName,
		Email:        mc.Email,
		MotherName:   mc.MotherName,
		BirthDate:    mc.BirthDate,
		TajNumber:    mc.TajNumber,
		TaxID:        mc.TaxID,
		PhoneNumbers: mc.PhoneNumbers,
		Addresses:    mc.Addresses,
		CreatedAt:    unixToTime(mc.CreatedAt),
		UpdatedAt:    unixToTime(mc.UpdatedAt),
	}
}

package story

import (
	"fmt"
	"strings"
)

// Boundary describes which fields of an entity to push to their limits in
// the boundary-condition edge case.
type Boundary struct {
	MaxField  string `json:"max_field"`
	MinField  string `json:"min_field"`
	TextField string `json:"text_field"`
}

// Illustrative payloads per entity. Data only; synthesis logic never
// reaches into these beyond lookup.
var sampleData = map[string]map[string]any{
	"user":    {"username": "test_user", "email": "test@example.com", "password": "SecurePass123!"},
	"account": {"accountName": "Test Account", "accountType": "Premium"},
	"product": {"name": "Sample Product", "price": 29.99, "sku": "PROD-001"},
	"order":   {"orderId": "ORD-12345", "total": 99.99, "items": []any{"item1", "item2"}},
	"payment": {"amount": 99.99, "currency": "USD", "method": "credit_card"},
	"booking": {"date": "2024-01-15", "time": "14:00", "duration": 60},
	"profile": {"firstName": "John", "lastName": "Doe", "bio": "Test user profile"},
	"message": {"subject": "Test Message", "body": "Sample message content", "recipient": "user@example.com"},
	"file":    {"fileName": "document.pdf", "fileSize": "2MB", "fileType": "application/pdf"},
	"cart":    {"items": []any{map[string]any{"productId": "123", "quantity": 2}}, "subtotal": 59.98},
}

var boundaryData = map[string]Boundary{
	"user":    {MaxField: "username length (50 chars)", MinField: "username length (3 chars)", TextField: "username"},
	"product": {MaxField: "price value ($999,999)", MinField: "price value ($0.01)", TextField: "description"},
	"order":   {MaxField: "item quantity (9999)", MinField: "item quantity (1)", TextField: "notes"},
	"payment": {MaxField: "amount ($100,000)", MinField: "amount ($0.01)", TextField: "description"},
	"message": {MaxField: "message length (5000 chars)", MinField: "message length (1 char)", TextField: "content"},
	"file":    {MaxField: "file size (100MB)", MinField: "file size (1KB)", TextField: "filename"},
	"booking": {MaxField: "duration (8 hours)", MinField: "duration (15 minutes)", TextField: "notes"},
}

// SampleFor returns an illustrative payload for the entity, or a generic
// record for entities outside the table.
func SampleFor(entity string) map[string]any {
	if sample, ok := sampleData[strings.ToLower(entity)]; ok {
		return sample
	}
	return map[string]any{"name": fmt.Sprintf("Sample %s", entity), "id": "TEST-001"}
}

// BoundaryFor returns the boundary descriptor for the entity, or generic
// field labels for entities outside the table.
func BoundaryFor(entity string) Boundary {
	if boundary, ok := boundaryData[strings.ToLower(entity)]; ok {
		return boundary
	}
	return Boundary{
		MaxField:  "field value (max limit)",
		MinField:  "field value (min limit)",
		TextField: "text field",
	}
}

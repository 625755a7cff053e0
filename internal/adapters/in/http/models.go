package http

import "time"

// Wire types of the OpenAPI document in openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID int64 `json:"id"`
}

type WorkerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Order struct {
	ID         int64      `json:"id"`
	ClientID   int64      `json:"clientId"`
	ClientName string     `json:"clientName"`
	CreatedAt  time.Time  `json:"createdAt"`
	Status     string     `json:"status"`
	Worker     *WorkerRef `json:"worker,omitempty"`
}

type OrderItem struct {
	ProductID   int64  `json:"productId"`
	Description string `json:"description"`
	Note        string `json:"note,omitempty"`
}

type OrderDetails struct {
	ID          int64       `json:"id"`
	ClientName  string      `json:"clientName"`
	ClientPhone string      `json:"clientPhone"`
	CreatedAt   time.Time   `json:"createdAt"`
	Status      string      `json:"status"`
	Worker      *WorkerRef  `json:"worker,omitempty"`
	Items       []OrderItem `json:"items"`
}

type NewOrder struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Patronymic  string `json:"patronymic"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	ProductType string `json:"productType"`
	Material    string `json:"material"`
	Purity      int    `json:"purity"`
	Note        string `json:"note"`
}

type CreatedOrder struct {
	OrderID       int64             `json:"orderId"`
	ClientID      int64             `json:"clientId"`
	ProductID     int64             `json:"productId"`
	ClientCreated bool              `json:"clientCreated"`
	Assignment    AssignmentOutcome `json:"assignment"`
}

type AssignmentOutcome struct {
	OrderID  int64  `json:"orderId"`
	WorkerID int64  `json:"workerId,omitempty"`
	Status   string `json:"status"`
	Warning  string `json:"warning,omitempty"`
}

type LifecycleOutcome struct {
	OrderID int64              `json:"orderId"`
	From    string             `json:"from"`
	To      string             `json:"to"`
	Changed bool               `json:"changed"`
	Warning string             `json:"warning,omitempty"`
	Requeue *AssignmentOutcome `json:"requeue,omitempty"`
}

type CompleteOrder struct {
	WorkerID *int64 `json:"workerId,omitempty"`
}

type Worker struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Load        int    `json:"load"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"isAvailable"`
}

type NewWorker struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Patronymic string `json:"patronymic"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type WorkerOrder struct {
	OrderID    int64     `json:"orderId"`
	ClientName string    `json:"clientName"`
	CreatedAt  time.Time `json:"createdAt"`
	AssignedAt time.Time `json:"assignedAt"`
	Status     string    `json:"status"`
}

type Client struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	OrderCount int    `json:"orderCount"`
}

type QuoteRequest struct {
	ProductType  string   `json:"productType"`
	Material     string   `json:"material"`
	Purity       int      `json:"purity"`
	WeightGrams  string   `json:"weightGrams"`
	Enhancements []string `json:"enhancements"`
}

type Quote struct {
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type TransitionStats struct {
	Total      int64 `json:"total"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
	Other      int64 `json:"other"`
}

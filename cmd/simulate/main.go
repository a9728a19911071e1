package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"ev-storefront/internal/api"
	"ev-storefront/internal/domain"
	"ev-storefront/pkg/client"
)

// randomSelection picks an option for each group, sometimes leaving a group
// out so the caller-side defaults get exercised.
func randomSelection(p *domain.Product) domain.Selection {
	sel := domain.Selection{}
	for _, group := range domain.OptionGroups {
		options := p.Configurations.Options(group)
		if rand.IntN(4) == 0 {
			continue
		}
		sel[group] = options[rand.IntN(len(options))].Name
	}
	return sel
}

func main() {
	baseURL := flag.String("api", "http://localhost:5000/api", "storefront API base URL")
	orders := flag.Int("orders", 20, "number of orders to place")
	flag.Parse()

	ctx := context.Background()
	session := &client.Session{}
	c := client.New(*baseURL, session)

	email := fmt.Sprintf("sim-%s@example.com", uuid.NewString()[:8])
	res, err := c.Register(ctx, api.RegisterRequest{Name: "Simulator", Email: email, Password: "simulate-123"})
	if err != nil {
		log.Fatalf("register failed: %v", err)
	}
	session.Set(res.Token)

	products, err := c.ListProducts(ctx)
	if err != nil {
		log.Fatalf("list products failed: %v", err)
	}
	if len(products) == 0 {
		log.Fatal("catalog is empty, start the server with SEED_CATALOG=true")
	}

	fmt.Printf("--- STARTING SIMULATION (%d ORDERS) as %s ---\n", *orders, email)
	for i := 0; i < *orders; i++ {
		product := &products[rand.IntN(len(products))]
		sel := randomSelection(product).WithDefaults(product)

		quote, err := c.Quote(ctx, product.ID, sel)
		if err != nil {
			log.Printf("[%d] quote failed: %v", i+1, err)
			continue
		}

		order, err := c.PlaceOrder(ctx, api.PlaceOrderRequest{
			ProductID:     product.ID.String(),
			Configuration: api.NewSelectionPayload(sel),
			TotalPrice:    &quote.TotalPrice,
			ShippingAddress: domain.ShippingAddress{
				Street:  "123 Demo St",
				City:    "Demo City",
				State:   "Demo State",
				ZipCode: "12345",
				Country: "Demo Country",
			},
		})

		var apiErr *client.APIError
		switch {
		case errors.As(err, &apiErr):
			fmt.Printf("[%d] %s REJECTED (%d): %s\n", i+1, product.Name, apiErr.StatusCode, apiErr.Message)
		case err != nil:
			fmt.Printf("[%d] %s FAILED: %v\n", i+1, product.Name, err)
		default:
			fmt.Printf("[%d] %s %s / %s / %s / %s -> $%d (order %s)\n", i+1, product.Name,
				order.Configuration.Variant, order.Configuration.Color,
				order.Configuration.Wheels, order.Configuration.Interior,
				order.TotalPrice, order.ID)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

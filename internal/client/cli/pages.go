package cli

import "fmt"

// The static pages. Content-light on purpose: the catalog is the product.

func (a *App) About() {
	fmt.Println("plotline — browse plots for sale, straight from your terminal.")
}

func (a *App) Services() {
	fmt.Println("Services: plot listings, site visits, documentation assistance.")
	fmt.Println("Express interest in any property and our team will contact you.")
}

func (a *App) Contact() {
	fmt.Println("Contact: run 'interest <id>' on a property, or write to sales@plotline.example.")
}

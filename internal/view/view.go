package view

import "github.com/apexgrid/gridwear/internal/catalog"

// Page identifies which storefront screen is visible.
type Page string

const (
	PageHome           Page = "home"
	PageCategory       Page = "category"
	PageProduct        Page = "product"
	PageCart           Page = "cart"
	PageLogin          Page = "login"
	PageSignup         Page = "signup"
	PageForgotPassword Page = "forgot-password"
)

// Features toggles optional parts of the navigation surface, so one machine
// serves storefront variants with and without the auth pages or search.
type Features struct {
	AuthPages bool
	Search    bool
}

// AllFeatures enables every page.
func AllFeatures() Features {
	return Features{AuthPages: true, Search: true}
}

// Machine is the navigation state machine: the current page plus the
// contextual category/product selection that drives rendering.
//
// Every transition is total; nothing is gated on a server round trip. The
// selection invariants hold after each one: the category page always has
// a selected category, the product page always has a selected product, and
// every other page clears both.
type Machine struct {
	features Features

	page             Page
	selectedCategory string
	selectedProduct  *catalog.Product
}

// NewMachine returns a machine on the home page with nothing selected.
func NewMachine(features Features) *Machine {
	return &Machine{features: features, page: PageHome}
}

// Page returns the current page.
func (m *Machine) Page() Page { return m.page }

// SelectedCategory returns the focused category id, empty when none.
func (m *Machine) SelectedCategory() string { return m.selectedCategory }

// SelectedProduct returns the focused product, nil when none.
func (m *Machine) SelectedProduct() *catalog.Product { return m.selectedProduct }

// Features returns the machine's feature flags.
func (m *Machine) Features() Features { return m.features }

// GoHome shows the home page and clears both selections.
func (m *Machine) GoHome() {
	m.page = PageHome
	m.clearSelections()
}

// GoToCategory shows the category page for the given id and clears any
// product focus.
func (m *Machine) GoToCategory(categoryID string) {
	m.page = PageCategory
	m.selectedCategory = categoryID
	m.selectedProduct = nil
}

// GoToProduct shows the product page. An already-set category is preserved
// so Back can return to the category listing; a direct product view without
// one falls back to home.
func (m *Machine) GoToProduct(p catalog.Product) {
	m.page = PageProduct
	m.selectedProduct = &p
}

// GoToCart shows the cart page and clears both selections.
func (m *Machine) GoToCart() {
	m.page = PageCart
	m.clearSelections()
}

// GoToLogin shows the login page. A no-op when auth pages are disabled.
func (m *Machine) GoToLogin() { m.goToAuthPage(PageLogin) }

// GoToSignup shows the signup page. A no-op when auth pages are disabled.
func (m *Machine) GoToSignup() { m.goToAuthPage(PageSignup) }

// GoToForgotPassword shows the password-reset page. A no-op when auth pages
// are disabled.
func (m *Machine) GoToForgotPassword() { m.goToAuthPage(PageForgotPassword) }

// Back returns to the selected category when one is in focus, else home.
func (m *Machine) Back() {
	if m.selectedCategory != "" {
		m.GoToCategory(m.selectedCategory)
		return
	}
	m.GoHome()
}

func (m *Machine) goToAuthPage(page Page) {
	if !m.features.AuthPages {
		return
	}
	m.page = page
	m.clearSelections()
}

func (m *Machine) clearSelections() {
	m.selectedCategory = ""
	m.selectedProduct = nil
}

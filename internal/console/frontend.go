package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/smartpanda/restaurant/internal/assistant"
	authapp "github.com/smartpanda/restaurant/internal/auth/application"
	authdomain "github.com/smartpanda/restaurant/internal/auth/domain"
	catalogapp "github.com/smartpanda/restaurant/internal/catalog/application"
	catalogdomain "github.com/smartpanda/restaurant/internal/catalog/domain"
	orderapp "github.com/smartpanda/restaurant/internal/order/application"
	orderdomain "github.com/smartpanda/restaurant/internal/order/domain"
	"github.com/smartpanda/restaurant/internal/validation"
	"github.com/smartpanda/restaurant/pkg/jsonfile"
)

// Frontend drives the interactive menus. It talks to the application
// services through their exported operations only; no console type ever
// crosses into the core.
type Frontend struct {
	log     *slog.Logger
	p       *prompter
	out     io.Writer
	auth    *authapp.Service
	catalog *catalogapp.Service
	orders  *orderapp.Service
}

func New(log *slog.Logger, in io.Reader, out io.Writer, auth *authapp.Service, catalog *catalogapp.Service, orders *orderapp.Service) *Frontend {
	return &Frontend{
		log:     log,
		p:       newPrompter(in, out),
		out:     out,
		auth:    auth,
		catalog: catalog,
		orders:  orders,
	}
}

// Run shows role-based dashboards until the user exits or the context is
// cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		printMainHeader(f.out)
		session := f.auth.Current()
		if !session.LoggedIn() {
			if exit := f.authMenu(ctx); exit {
				return nil
			}
			continue
		}
		switch session.Role {
		case authdomain.RoleAdmin, authdomain.RoleManager, authdomain.RoleStaff:
			f.workerDashboard(ctx, session)
		default:
			f.customerDashboard(ctx, session)
		}
	}
	return ctx.Err()
}

func (f *Frontend) authMenu(ctx context.Context) (exit bool) {
	printSubHeader(f.out, "User Authentication System")
	fmt.Fprintln(f.out, "1. Login")
	fmt.Fprintln(f.out, "2. Register")
	fmt.Fprintln(f.out, "0. Exit")

	switch f.p.number("Choose an option: ") {
	case 1:
		f.login(ctx)
	case 2:
		f.register(ctx)
	case 0:
		return true
	default:
		fmt.Fprintln(f.out, errText("Invalid input choice. Please enter a valid menu number."))
	}
	return false
}

func (f *Frontend) login(ctx context.Context) {
	printSubHeader(f.out, "User Login Form")
	username := f.p.text("Username: ")
	password := f.p.text("Password: ")

	session, err := f.auth.Login(ctx, username, password)
	if err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText(fmt.Sprintf("Welcome back %s!", session.Username)))
}

func (f *Frontend) register(ctx context.Context) {
	printSubHeader(f.out, "New User Register")
	in := authapp.RegisterInput{
		Username: f.p.text("Enter your username: "),
		FullName: f.p.text("Enter your full name: "),
		Email:    f.p.text("Enter your email: "),
		Phone:    f.p.text("Enter your phone: "),
		Address:  f.p.text("Enter your address: "),
		Password: f.p.text("Enter your password: "),
	}
	u, err := f.auth.Register(ctx, in)
	if err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText(fmt.Sprintf("User %s registered successfully.", u.Username)))
}

func (f *Frontend) workerDashboard(ctx context.Context, session authdomain.Session) {
	for ctx.Err() == nil {
		printSubHeader(f.out, fmt.Sprintf("%s Dashboard", session.Role))
		fmt.Fprintln(f.out, "1. Manage Inventory")
		fmt.Fprintln(f.out, "2. Manage Users (Only Admin Access)")
		fmt.Fprintln(f.out, "3. Logout")

		switch f.p.number("Choose an option: ") {
		case 1:
			f.inventoryMenu(ctx, session)
		case 2:
			f.userMenu(ctx, session)
		case 3:
			f.logout(ctx)
			return
		default:
			fmt.Fprintln(f.out, errText("Invalid input choice. Please enter 1, 2 or 3 as valid menu number."))
		}
	}
}

func (f *Frontend) customerDashboard(ctx context.Context, session authdomain.Session) {
	for ctx.Err() == nil {
		printSubHeader(f.out, "Customer Dashboard")
		fmt.Fprintln(f.out, "1. New Order")
		fmt.Fprintln(f.out, "2. View Orders")
		fmt.Fprintln(f.out, "3. Update Order")
		fmt.Fprintln(f.out, "4. Cancel Order")
		fmt.Fprintln(f.out, "5. Panda Assistant")
		fmt.Fprintln(f.out, "6. Logout")

		switch f.p.number("Choose an option: ") {
		case 1:
			f.newOrder(ctx, session)
		case 2:
			f.viewOrders(ctx, session)
		case 3:
			f.updateOrder(ctx, session)
		case 4:
			f.cancelOrder(ctx, session)
		case 5:
			f.runAssistant(ctx)
		case 6:
			f.logout(ctx)
			return
		default:
			fmt.Fprintln(f.out, errText("Invalid input choice. Please enter 1, 2, 3, 4, 5 or 6 as valid menu number."))
		}
	}
}

func (f *Frontend) logout(ctx context.Context) {
	if err := f.auth.Logout(ctx); err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText("You have successfully logged out"))
}

func (f *Frontend) runAssistant(ctx context.Context) {
	a := assistant.New(f.log, &typedRecognizer{p: f.p}, &consoleSpeaker{out: f.out}, f)
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		f.renderError(err)
	}
}

// --- ordering ---

func (f *Frontend) newOrder(ctx context.Context, session authdomain.Session) {
	printSubHeader(f.out, "Place New Order")
	cart := f.buildCart(ctx)
	if len(cart) == 0 {
		fmt.Fprintln(f.out, errText("No products selected for the order."))
		return
	}
	payment, ok := f.pickPayment()
	if !ok {
		return
	}
	order, err := f.orders.PlaceOrder(ctx, session, cart, payment)
	if err != nil {
		f.renderError(err)
		return
	}
	f.renderReceipt(order)
	fmt.Fprintln(f.out, okText(fmt.Sprintf("Payment successful with %s! Order %s placed.", order.PaymentMethod, order.ID)))
	f.p.pause()
}

func (f *Frontend) buildCart(ctx context.Context) []orderapp.CartItem {
	category, ok := f.pickCategory(ctx)
	if !ok {
		return nil
	}
	available := f.catalog.ProductsByCategory(ctx, category)
	if len(available) == 0 {
		fmt.Fprintln(f.out, warnText("No products in this category."))
		return nil
	}
	fmt.Fprintf(f.out, "\nProducts in '%s' category:\n", category)
	for _, p := range available {
		fmt.Fprintf(f.out, "%d. %s - %s (Stock: %d)\n", p.ID, p.Name, formatCurrency(p.Price), p.Quantity)
	}

	var cart []orderapp.CartItem
	for {
		id := f.p.number("Enter product ID to add to cart (0 to finish): ")
		if id == 0 {
			break
		}
		product, err := f.catalog.Product(ctx, id)
		if err != nil {
			f.renderError(err)
			continue
		}
		quantity := f.p.number(fmt.Sprintf("Enter quantity for %s: ", product.Name))
		if quantity == 0 {
			continue
		}
		if product.Quantity < quantity {
			fmt.Fprintln(f.out, errText(fmt.Sprintf("Not enough stock for %s. Available stock: %d", product.Name, product.Quantity)))
			continue
		}
		item := orderapp.CartItem{ProductID: product.ID, Quantity: quantity}
		for _, extra := range product.Extras {
			if f.p.confirm(fmt.Sprintf("Add extra %s for %s?", extra.Name, formatCurrency(extra.Price))) {
				item.Extras = append(item.Extras, extra.Name)
			}
		}
		cart = append(cart, item)
		fmt.Fprintln(f.out, okText(fmt.Sprintf("%s added to cart.", product.Name)))
	}
	return cart
}

func (f *Frontend) pickCategory(ctx context.Context) (catalogdomain.Category, bool) {
	categories := catalogdomain.Categories()
	fmt.Fprintln(f.out, "Select what you want to have:")
	for i, c := range categories {
		fmt.Fprintf(f.out, "%d. %s\n", i+1, c)
	}
	for {
		choice := f.p.number("Enter the number corresponding to the category: ")
		if choice >= 1 && choice <= len(categories) {
			return categories[choice-1], true
		}
		if choice == 0 {
			return "", false
		}
		fmt.Fprintln(f.out, errText("Invalid category selection."))
	}
}

func (f *Frontend) pickPayment() (orderdomain.PaymentMethod, bool) {
	for {
		switch f.p.number("Choose payment method (1. Bank Transfer, 2. Credit Card, 0. Abort): ") {
		case 1:
			return orderdomain.PaymentBankTransfer, true
		case 2:
			return orderdomain.PaymentCreditCard, true
		case 0:
			return "", false
		default:
			fmt.Fprintln(f.out, errText("Invalid payment method."))
		}
	}
}

func (f *Frontend) viewOrders(ctx context.Context, session authdomain.Session) {
	printSubHeader(f.out, "View Orders")
	found := false
	fmt.Fprintln(f.out, headText(fmt.Sprintf("%-10s%-12s%-16s%-10s", "Order ID", "Total", "Payment", "Status")))
	fmt.Fprintln(f.out, sepLine)
	for order := range f.orders.ViewOrders(ctx, session) {
		found = true
		fmt.Fprintf(f.out, "%-10s%-12s%-16s%-10s\n",
			order.ID, formatCurrency(order.TotalPrice), order.PaymentMethod, order.Status)
	}
	if !found {
		fmt.Fprintln(f.out, warnText("No orders found."))
	}
	f.p.pause()
}

func (f *Frontend) updateOrder(ctx context.Context, session authdomain.Session) {
	printSubHeader(f.out, "Update Order")
	id := f.p.text("Enter the order ID to update: ")
	current, err := f.orders.Order(ctx, session, id)
	if err != nil {
		f.renderError(err)
		return
	}
	f.renderReceipt(current)
	fmt.Fprintln(f.out, "Build the replacement order:")
	cart := f.buildCart(ctx)
	if len(cart) == 0 {
		fmt.Fprintln(f.out, warnText("Update cancelled, original order kept."))
		return
	}
	payment, ok := f.pickPayment()
	if !ok {
		return
	}
	updated, err := f.orders.UpdateOrder(ctx, session, id, cart, payment)
	if err != nil {
		f.renderError(err)
		return
	}
	f.renderReceipt(updated)
	fmt.Fprintln(f.out, okText(fmt.Sprintf("Order '%s' replaced by %s.", id, updated.ID)))
	f.p.pause()
}

func (f *Frontend) cancelOrder(ctx context.Context, session authdomain.Session) {
	printSubHeader(f.out, "Cancel Order")
	id := f.p.text("Enter the order ID to cancel: ")
	if !f.p.confirm(fmt.Sprintf("Are you sure you want to cancel order '%s'?", id)) {
		fmt.Fprintln(f.out, warnText("Order cancellation aborted."))
		return
	}
	if err := f.orders.CancelOrder(ctx, session, id); err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText(fmt.Sprintf("Order '%s' cancelled and stock restored.", id)))
}

func (f *Frontend) renderReceipt(order orderdomain.Order) {
	fmt.Fprintf(f.out, "\nYour order ID: %s\n", headText(order.ID))
	for _, l := range order.Lines {
		fmt.Fprintf(f.out, "  %dx %-20s %s\n", l.Quantity, l.Name, formatCurrency(l.UnitPrice*float64(l.Quantity)))
		for _, e := range l.Extras {
			fmt.Fprintf(f.out, "     + %-18s %s\n", e.Name, formatCurrency(e.Price))
		}
	}
	fmt.Fprintf(f.out, "Subtotal: %s\n", formatCurrency(order.BaseTotal))
	fmt.Fprintf(f.out, "Extras:   %s\n", formatCurrency(order.ExtrasTotal))
	fmt.Fprintf(f.out, "VAT 15%%:  %s\n", formatCurrency(order.VAT))
	fmt.Fprintf(f.out, "Tax 5%%:   %s\n", formatCurrency(order.Tax))
	fmt.Fprintf(f.out, "Total:    %s\n", headText(formatCurrency(order.TotalPrice)))
}

// --- inventory management ---

func (f *Frontend) inventoryMenu(ctx context.Context, session authdomain.Session) {
	for ctx.Err() == nil {
		printSubHeader(f.out, "Inventory Management")
		fmt.Fprintln(f.out, "1. View All Products")
		fmt.Fprintln(f.out, "2. Search Product")
		fmt.Fprintln(f.out, "3. Add Product")
		fmt.Fprintln(f.out, "4. Update Product")
		fmt.Fprintln(f.out, "5. Delete Product")
		fmt.Fprintln(f.out, "0. Back to Main Menu")

		switch f.p.number("Choose an option: ") {
		case 1:
			f.renderProducts(f.catalog.Products(ctx))
			f.p.pause()
		case 2:
			key := f.p.text("Search by product ID, name, or category: ")
			results := f.catalog.Search(ctx, key)
			if len(results) == 0 {
				fmt.Fprintln(f.out, warnText(fmt.Sprintf("No products found matching '%s'.", key)))
			} else {
				f.renderProducts(results)
			}
			f.p.pause()
		case 3:
			f.addProduct(ctx, session)
		case 4:
			f.updateProduct(ctx, session)
		case 5:
			f.deleteProduct(ctx, session)
		case 0:
			return
		default:
			fmt.Fprintln(f.out, errText("Invalid input choice. Please enter valid menu number."))
		}
	}
}

func (f *Frontend) addProduct(ctx context.Context, session authdomain.Session) {
	printSubHeader(f.out, "Add Product")
	fields := catalogdomain.Fields{
		Name:     f.p.text("Enter product name: "),
		Price:    f.p.amount("Enter product price: "),
		Quantity: f.p.number("Enter product quantity: "),
	}
	category, ok := f.pickCategory(ctx)
	if !ok {
		return
	}
	fields.Category = category
	fields.Extras = f.readExtras()

	p, err := f.catalog.AddProduct(ctx, session, fields)
	if err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText(fmt.Sprintf("Product '%s' added successfully!", p.Name)))
}

func (f *Frontend) updateProduct(ctx context.Context, session authdomain.Session) {
	printSubHeader(f.out, "Update Product")
	id := f.p.number("Enter the product ID to update: ")
	current, err := f.catalog.Product(ctx, id)
	if err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintf(f.out, "Updating product: %s\n", current.Name)

	fields := catalogdomain.Fields{
		Name:     current.Name,
		Price:    current.Price,
		Quantity: current.Quantity,
		Category: current.Category,
		Extras:   current.Extras,
	}
	if name := f.p.optional(fmt.Sprintf("Enter new name (current: %s): ", current.Name)); name != "" {
		fields.Name = name
	}
	fields.Price = f.p.amount(fmt.Sprintf("Enter new price (current: %s): ", formatCurrency(current.Price)))
	fields.Quantity = f.p.number(fmt.Sprintf("Enter new quantity (current: %d): ", current.Quantity))
	if category, ok := f.pickCategory(ctx); ok {
		fields.Category = category
	}
	if f.p.confirm("Replace extras?") {
		fields.Extras = f.readExtras()
	}

	p, err := f.catalog.UpdateProduct(ctx, session, id, fields)
	if err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText(fmt.Sprintf("Product '%s' updated successfully.", p.Name)))
}

func (f *Frontend) deleteProduct(ctx context.Context, session authdomain.Session) {
	printSubHeader(f.out, "Delete Product")
	id := f.p.number("Enter the product ID to delete: ")
	current, err := f.catalog.Product(ctx, id)
	if err != nil {
		f.renderError(err)
		return
	}
	if !f.p.confirm(fmt.Sprintf("Are you sure you want to delete the product '%s'?", current.Name)) {
		fmt.Fprintln(f.out, warnText("Product deletion canceled."))
		return
	}
	if err := f.catalog.RemoveProduct(ctx, session, id); err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText(fmt.Sprintf("Product '%s' deleted successfully.", current.Name)))
}

func (f *Frontend) readExtras() []catalogdomain.Extra {
	var extras []catalogdomain.Extra
	for {
		name := f.p.optional("Enter extra item name (or Enter x to finish): ")
		if name == "" || name == "x" || name == "X" {
			break
		}
		price := f.p.amount(fmt.Sprintf("Enter price for %s: ", name))
		extras = append(extras, catalogdomain.Extra{Name: name, Price: price})
	}
	return extras
}

func (f *Frontend) renderProducts(products []catalogdomain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(f.out, warnText("No products found."))
		return
	}
	fmt.Fprintln(f.out, headText(fmt.Sprintf("%-5s%-20s%-10s%-10s%-15s%-20s",
		"ID", "Name", "Price", "Quantity", "Category", "Extras")))
	fmt.Fprintln(f.out, sepLine)
	for _, p := range products {
		names := make([]string, 0, len(p.Extras))
		for _, e := range p.Extras {
			names = append(names, e.Name)
		}
		fmt.Fprintf(f.out, "%-5d%-20s%-10s%-10d%-15s%-20s\n",
			p.ID, p.Name, formatCurrency(p.Price), p.Quantity, p.Category, strings.Join(names, ", "))
	}
}

// --- user management ---

func (f *Frontend) userMenu(ctx context.Context, session authdomain.Session) {
	if session.Role != authdomain.RoleAdmin {
		fmt.Fprintln(f.out, errText("Only admin can manage users!!! Please login as a admin."))
		return
	}
	for ctx.Err() == nil {
		printSubHeader(f.out, "Users Managing System")
		fmt.Fprintln(f.out, "1. View All Users")
		fmt.Fprintln(f.out, "2. Search User")
		fmt.Fprintln(f.out, "3. Delete User")
		fmt.Fprintln(f.out, "4. Update User Role")
		fmt.Fprintln(f.out, "5. View All Workers Only")
		fmt.Fprintln(f.out, "0. Back to Main Menu")

		switch f.p.number("Choose an option: ") {
		case 1:
			users, err := f.auth.Users(ctx, session)
			f.renderUsersOrError(users, err)
		case 2:
			key := f.p.text("Search by username, email, phone or full name: ")
			users, err := f.auth.SearchUsers(ctx, session, key)
			if err == nil && len(users) == 0 {
				fmt.Fprintln(f.out, warnText(fmt.Sprintf("No users found matching '%s'.", key)))
				f.p.pause()
				continue
			}
			f.renderUsersOrError(users, err)
		case 3:
			f.deleteUser(ctx, session)
		case 4:
			f.updateUserRole(ctx, session)
		case 5:
			users, err := f.auth.Workers(ctx, session)
			f.renderUsersOrError(users, err)
		case 0:
			return
		default:
			fmt.Fprintln(f.out, errText("Invalid input choice. Please enter valid menu number."))
		}
	}
}

func (f *Frontend) deleteUser(ctx context.Context, session authdomain.Session) {
	username := f.p.text("Enter the username of the user you want to delete: ")
	if !f.p.confirm(fmt.Sprintf("Are you sure you want to delete the user '%s'?", username)) {
		fmt.Fprintln(f.out, warnText("User deletion canceled."))
		return
	}
	if err := f.auth.DeleteUser(ctx, session, username); err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText(fmt.Sprintf("User '%s' has been deleted successfully.", username)))
}

func (f *Frontend) updateUserRole(ctx context.Context, session authdomain.Session) {
	username := f.p.text("Enter the username: ")
	roles := authdomain.Roles()
	fmt.Fprintln(f.out, "Available roles:")
	for i, r := range roles {
		fmt.Fprintf(f.out, "%d. %s\n", i+1, r)
	}
	choice := f.p.number("Enter the number of the role you want to select: ")
	if choice < 1 || choice > len(roles) {
		fmt.Fprintln(f.out, errText("Invalid choice. Please select a valid role number."))
		return
	}
	role := roles[choice-1]
	if err := f.auth.UpdateRole(ctx, session, username, role); err != nil {
		f.renderError(err)
		return
	}
	fmt.Fprintln(f.out, okText(fmt.Sprintf("Updated %s's role to %s.", username, role)))
}

func (f *Frontend) renderUsersOrError(users []authdomain.User, err error) {
	if err != nil {
		f.renderError(err)
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(f.out, warnText("No users found in the system."))
		f.p.pause()
		return
	}
	fmt.Fprintln(f.out, headText(fmt.Sprintf("%-20s%-25s%-35s%-15s", "Username", "Full Name", "Email", "Role")))
	fmt.Fprintln(f.out, sepLine)
	for _, u := range users {
		fmt.Fprintf(f.out, "%-20s%-25s%-35s%-15s\n", u.Username, u.FullName, u.Email, u.Role)
	}
	f.p.pause()
}

// --- assistant wiring ---

// BrowseMenu, NewOrder, ViewOrders, UpdateOrder and CancelOrder make the
// frontend the assistant's Actions: voice reaches exactly the operations
// the menus reach.

func (f *Frontend) BrowseMenu(ctx context.Context) error {
	f.renderProducts(f.catalog.Products(ctx))
	f.p.pause()
	return nil
}

func (f *Frontend) NewOrder(ctx context.Context) error {
	f.newOrder(ctx, f.auth.Current())
	return nil
}

func (f *Frontend) ViewOrders(ctx context.Context) error {
	f.viewOrders(ctx, f.auth.Current())
	return nil
}

func (f *Frontend) UpdateOrder(ctx context.Context) error {
	f.updateOrder(ctx, f.auth.Current())
	return nil
}

func (f *Frontend) CancelOrder(ctx context.Context) error {
	f.cancelOrder(ctx, f.auth.Current())
	return nil
}

type typedRecognizer struct {
	p *prompter
}

func (r *typedRecognizer) Listen(ctx context.Context) (string, error) {
	s, ok := r.p.line("You say: ")
	if !ok {
		return "exit", nil
	}
	return s, nil
}

type consoleSpeaker struct {
	out io.Writer
}

func (s *consoleSpeaker) Say(text string) {
	fmt.Fprintf(s.out, "Assistant: %s\n", text)
}

// --- shared rendering ---

const sepLine = "-------------------------------------------------------------------------------------"

func (f *Frontend) renderError(err error) {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		fmt.Fprintln(f.out, errText(fmt.Sprintf("Invalid input (%s). Please try again.", ve)))
	case errors.Is(err, catalogdomain.ErrInsufficientStock):
		fmt.Fprintln(f.out, errText(err.Error()))
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		fmt.Fprintln(f.out, warnText("Product not found."))
	case errors.Is(err, orderdomain.ErrOrderNotFound):
		fmt.Fprintln(f.out, warnText("Order not found."))
	case errors.Is(err, orderdomain.ErrEmptyCart):
		fmt.Fprintln(f.out, errText("No products selected for the order."))
	case errors.Is(err, authdomain.ErrUserNotFound):
		fmt.Fprintln(f.out, errText("Username not found. Enter correct your username!"))
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		fmt.Fprintln(f.out, errText("Incorrect password. Please enter your correct password!"))
	case errors.Is(err, authdomain.ErrUsernameTaken):
		fmt.Fprintln(f.out, errText("Error: Username already exists."))
	case errors.Is(err, authdomain.ErrPermissionDenied):
		fmt.Fprintln(f.out, errText("Permission denied."))
	case errors.Is(err, jsonfile.ErrStorage):
		f.log.Error("storage failure", "err", err)
		fmt.Fprintln(f.out, errText("An error occurred. Check error_log.txt for details."))
	default:
		f.log.Error("operation failed", "err", err)
		fmt.Fprintln(f.out, errText("An error occurred. Check error_log.txt for details."))
	}
}

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/abdullahbaig-27688/yemi-seller/internal/client/api"
	"github.com/abdullahbaig-27688/yemi-seller/internal/client/credstore"
	"github.com/abdullahbaig-27688/yemi-seller/internal/client/session"
	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

var (
	version   string
	buildDate string
)

// shell wires the interactive command loop for managing the storefront.
type shell struct {
	client  *api.Client
	session *session.Manager
	scanner *bufio.Scanner
}

func (s *shell) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !s.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(s.scanner.Text())
}

func (s *shell) login(ctx context.Context) {
	email := s.prompt("email")
	password := s.prompt("password")

	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		fmt.Println("login failed:", err)
		return
	}
	profile := res.Seller.Profile()
	if err := s.session.Login(ctx, res.Token, &profile); err != nil {
		fmt.Println("failed to save session:", err)
		return
	}
	fmt.Printf("Logged in as %s %s\n", profile.FirstName, profile.LastName)
}

func (s *shell) whoami() {
	if !s.session.IsAuthenticated() {
		fmt.Println("Not logged in")
		return
	}
	p := s.session.Profile()
	fmt.Printf("%s %s <%s> %s\n", p.FirstName, p.LastName, p.Email, p.Phone)
}

func (s *shell) listProducts(ctx context.Context) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(products) == 0 {
		fmt.Println("No products")
		return
	}
	for _, p := range products {
		fmt.Printf("%s  %-30s  %8.2f  stock=%d\n", p.ID, p.Title, float64(p.PriceCents)/100, p.Stock)
	}
}

func (s *shell) addProduct(ctx context.Context) {
	title := s.prompt("title")
	description := s.prompt("description")
	price, err := strconv.ParseInt(s.prompt("price (cents)"), 10, 64)
	if err != nil {
		fmt.Println("invalid price")
		return
	}
	stock, err := strconv.Atoi(s.prompt("stock"))
	if err != nil {
		fmt.Println("invalid stock")
		return
	}
	category := s.prompt("category id")

	p, err := s.client.CreateProduct(ctx, models.Product{
		Title:       title,
		Description: description,
		PriceCents:  price,
		Stock:       stock,
		CategoryID:  category,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Product created:", p.ID)
}

func (s *shell) editProduct(ctx context.Context, id string) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var current *models.Product
	for i := range products {
		if products[i].ID == id {
			current = &products[i]
			break
		}
	}
	if current == nil {
		fmt.Println("Product not found")
		return
	}

	// Empty input keeps the current value.
	if v := s.prompt(fmt.Sprintf("title [%s]", current.Title)); v != "" {
		current.Title = v
	}
	if v := s.prompt(fmt.Sprintf("price cents [%d]", current.PriceCents)); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			fmt.Println("invalid price")
			return
		}
		current.PriceCents = price
	}
	if v := s.prompt(fmt.Sprintf("stock [%d]", current.Stock)); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			fmt.Println("invalid stock")
			return
		}
		current.Stock = stock
	}

	if _, err := s.client.UpdateProduct(ctx, *current); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Product updated")
}

func (s *shell) listOrders(ctx context.Context, status models.OrderStatus) {
	orders, err := s.client.ListOrders(ctx, status)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("No orders")
		return
	}
	for _, o := range orders {
		fmt.Printf("%s  %-20s  %-10s  %8.2f\n", o.ID, o.CustomerName, o.Status, float64(o.TotalCents)/100)
	}
}

func (s *shell) chat(ctx context.Context, orderID string) {
	msgs, err := s.client.Messages(ctx, orderID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(msgs) == 0 {
		fmt.Println("No messages")
		return
	}
	for _, m := range msgs {
		fmt.Printf("[%s] %s\n", m.Sender, m.Body)
	}
}

func (s *shell) dashboard(ctx context.Context) {
	stats, err := s.client.Dashboard(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Products:       %d\n", stats.ProductCount)
	fmt.Printf("Pending orders: %d\n", stats.PendingOrders)
	fmt.Printf("Shipped orders: %d\n", stats.ShippedOrders)
	fmt.Printf("Total orders:   %d\n", stats.TotalOrders)
	fmt.Printf("Revenue:        %.2f\n", float64(stats.RevenueCents)/100)
}

func (s *shell) bank(ctx context.Context) {
	holder := s.prompt("account holder")
	bank := s.prompt("bank name")
	branch := s.prompt("branch")
	account := s.prompt("account number")

	if err := s.client.UpdateBank(ctx, holder, bank, branch, account); err != nil {
		fmt.Println("error:", err)
		return
	}
	update := models.ProfileUpdate{
		HolderName:    &holder,
		BankName:      &bank,
		BranchName:    &branch,
		AccountNumber: &account,
	}
	if err := s.session.UpdateProfile(ctx, update); err != nil {
		fmt.Println("failed to save session:", err)
		return
	}
	fmt.Println("Bank details updated")
}

// repl runs the interactive shell loop, accepting commands to manage the
// storefront.
func (s *shell) repl(ctx context.Context) {
	for {
		fmt.Print("yemi> ")
		if !s.scanner.Scan() {
			break
		}
		line := strings.TrimSpace(s.scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Commands: help, login, logout, whoami, products, product add | edit <id> | rm <id>,")
			fmt.Println("          orders [status], order ship <id>, chat <order-id>, send <order-id> <text...>,")
			fmt.Println("          shipping, bank, shop, dashboard, exit")
		case "login":
			s.login(ctx)
		case "logout":
			if err := s.session.Logout(ctx); err != nil {
				fmt.Println("logout error:", err)
			} else {
				fmt.Println("Logged out")
			}
		case "whoami":
			s.whoami()
		case "products":
			s.listProducts(ctx)
		case "product":
			if len(args) < 2 {
				fmt.Println("Usage: product add | edit <id> | rm <id>")
				continue
			}
			switch args[1] {
			case "add":
				s.addProduct(ctx)
			case "edit":
				if len(args) < 3 {
					fmt.Println("Usage: product edit <id>")
					continue
				}
				s.editProduct(ctx, args[2])
			case "rm":
				if len(args) < 3 {
					fmt.Println("Usage: product rm <id>")
					continue
				}
				if err := s.client.DeleteProduct(ctx, args[2]); err != nil {
					fmt.Println("error:", err)
				} else {
					fmt.Println("Product deleted")
				}
			default:
				fmt.Println("Usage: product add | edit <id> | rm <id>")
			}
		case "orders":
			var status models.OrderStatus
			if len(args) > 1 {
				status = models.OrderStatus(args[1])
				if !status.Valid() {
					fmt.Println("Unknown status:", args[1])
					continue
				}
			}
			s.listOrders(ctx, status)
		case "order":
			if len(args) < 3 || args[1] != "ship" {
				fmt.Println("Usage: order ship <id>")
				continue
			}
			if err := s.client.UpdateOrderStatus(ctx, args[2], models.OrderShipped); err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("Order marked shipped")
			}
		case "chat":
			if len(args) < 2 {
				fmt.Println("Usage: chat <order-id>")
				continue
			}
			s.chat(ctx, args[1])
		case "send":
			if len(args) < 3 {
				fmt.Println("Usage: send <order-id> <text...>")
				continue
			}
			if _, err := s.client.SendMessage(ctx, args[1], strings.Join(args[2:], " ")); err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("Sent")
			}
		case "shipping":
			cats, err := s.client.ShippingCategories(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, c := range cats {
				fmt.Printf("%s  %-20s  %6.2f\n", c.ID, c.Name, float64(c.FeeCents)/100)
			}
		case "bank":
			s.bank(ctx)
		case "shop":
			name := s.prompt("shop name")
			description := s.prompt("description")
			if err := s.client.UpdateShop(ctx, name, description); err != nil {
				fmt.Println("error:", err)
			} else {
				fmt.Println("Shop updated")
			}
		case "dashboard":
			s.dashboard(ctx)
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main parses command-line flags and dispatches to the login, register, or
// shell commands.
func main() {
	var (
		cmd       string
		baseURL   string
		storePath string
		keyPath   string
		showVer   bool
	)

	flag.StringVar(&cmd, "cmd", "shell", "command: login | register | shell")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&storePath, "store", "seller-credentials.dat", "path to the credential store")
	flag.StringVar(&keyPath, "key", "seller-credentials.key", "path to the credential store key")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Yemi Seller Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	ctx := context.Background()

	store, err := credstore.NewFileStore(storePath, keyPath)
	if err != nil {
		log.Fatal(err)
	}
	sess := session.NewManager(store)
	sess.Restore(ctx)

	client := api.New(baseURL, nil, sess)
	sh := &shell{client: client, session: sess, scanner: bufio.NewScanner(os.Stdin)}

	switch cmd {
	case "login":
		sh.login(ctx)
	case "register":
		email := sh.prompt("email")
		password := sh.prompt("password")
		firstName := sh.prompt("first name")
		lastName := sh.prompt("last name")
		phone := sh.prompt("phone")

		res, err := client.Register(ctx, email, password, firstName, lastName, phone)
		if err != nil {
			log.Fatal(err)
		}
		profile := res.Seller.Profile()
		if err := sess.Login(ctx, res.Token, &profile); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Registered and logged in")
	case "shell":
		if sess.IsAuthenticated() {
			p := sess.Profile()
			fmt.Printf("Welcome back, %s %s\n", p.FirstName, p.LastName)
		} else {
			fmt.Println("Not logged in. Use the 'login' command.")
		}
		sh.repl(ctx)
	default:
		log.Fatalf("unknown command: %s", cmd)
	}
}

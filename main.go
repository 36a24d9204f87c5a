// Command auction-console is a terminal client for a remote auction
// service: it polls the listing, renders it locally, and drives the bid
// dialog workflow.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"

	"auction-console/internal/api"
	"auction-console/internal/app"
	"auction-console/internal/models"
	"auction-console/internal/stubserver"
	"auction-console/utils"
)

func main() {
	serverURL := flag.String("server", defaultServer(), "auction service base URL")
	demo := flag.Bool("demo", false, "run against a built-in sample backend")
	flag.Parse()

	if *demo {
		addr, err := startDemoBackend()
		if err != nil {
			utils.Fatal("failed to start demo backend", map[string]any{"error": err.Error()})
		}
		*serverURL = addr
		fmt.Printf("Demo backend running at %s\n", addr)
	}

	display := newTerminalDisplay(os.Stdout)
	client := api.NewClient(*serverURL)
	a := app.New(app.Config{API: client, Display: display})

	go a.Run()
	defer a.Dispose()

	runCommandLoop(a, os.Stdin)
}

// defaultServer returns the service URL from env or a local default.
func defaultServer() string {
	if s := os.Getenv("AUCTION_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// startDemoBackend serves the seeded stub backend on a loopback port and
// returns its base URL.
func startDemoBackend() (string, error) {
	store := stubserver.NewStore()
	store.Seed()
	router := stubserver.SetupRouter(store)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	go func() {
		if err := router.RunListener(listener); err != nil {
			utils.Error("demo backend stopped", map[string]any{"error": err.Error()})
		}
	}()
	return "http://" + listener.Addr().String(), nil
}

const helpText = `Commands:
  auctions                                      show the auction list
  refresh                                       reload the auction list now
  bid <auctionId>                               open the bid dialog
  submit <auctionId> <bidder> <amount>          place a bid
  close                                         close the bid dialog
  register                                      show the registration section
  signup <username> <email> [seller]            register a user
  create                                        show the listing section
  sell <item>|<description> <seller> <start> <increment> <minutes>
                                                create an auction
  status                                        show backend status
  help                                          this text
  quit                                          exit`

// runCommandLoop translates stdin commands into intents until EOF or quit.
func runCommandLoop(a *app.App, in io.Reader) {
	scanner := bufio.NewScanner(in)
	fmt.Println(helpText)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "auctions":
			a.Post(app.ShowSection{Section: app.SectionAuctions})
		case "register":
			a.Post(app.ShowSection{Section: app.SectionRegister})
		case "create":
			a.Post(app.ShowSection{Section: app.SectionCreate})
		case "status":
			a.Post(app.ShowSection{Section: app.SectionStatus})
		case "refresh":
			a.Post(app.RefreshList{})
		case "bid":
			if id, ok := parseID(fields, 1); ok {
				a.Post(app.OpenDialog{AuctionID: id})
			}
		case "submit":
			postSubmit(a, fields)
		case "close":
			a.Post(app.CloseDialog{})
		case "signup":
			postSignup(a, fields)
		case "sell":
			postSell(a, fields)
		case "help":
			fmt.Println(helpText)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, try help\n", fields[0])
		}
	}
}

func parseID(fields []string, idx int) (int64, bool) {
	if len(fields) <= idx {
		fmt.Println("missing auction id")
		return 0, false
	}
	id, err := strconv.ParseInt(fields[idx], 10, 64)
	if err != nil {
		fmt.Printf("bad auction id %q\n", fields[idx])
		return 0, false
	}
	return id, true
}

func postSubmit(a *app.App, fields []string) {
	if len(fields) != 4 {
		fmt.Println("usage: submit <auctionId> <bidder> <amount>")
		return
	}
	id, ok := parseID(fields, 1)
	if !ok {
		return
	}
	amount, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		fmt.Printf("bad amount %q\n", fields[3])
		return
	}
	a.Post(app.SubmitBid{AuctionID: id, BidderName: fields[2], Amount: amount})
}

func postSignup(a *app.App, fields []string) {
	if len(fields) < 3 {
		fmt.Println("usage: signup <username> <email> [seller]")
		return
	}
	isSeller := len(fields) > 3 && fields[3] == "seller"
	a.Post(app.Register{Username: fields[1], Email: fields[2], IsSeller: isSeller})
}

func postSell(a *app.App, fields []string) {
	// item and description are one |-separated argument so both can hold
	// spaces without quoting rules
	if len(fields) != 6 {
		fmt.Println("usage: sell <item>|<description> <seller> <start> <increment> <minutes>")
		return
	}
	item, description, ok := strings.Cut(fields[1], "|")
	if !ok {
		description = item
	}
	start, err1 := strconv.ParseFloat(fields[3], 64)
	increment, err2 := strconv.ParseFloat(fields[4], 64)
	minutes, err3 := strconv.ParseInt(fields[5], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Println("start, increment and minutes must be numbers")
		return
	}
	a.Post(app.CreateListing{Req: models.CreateAuctionRequest{
		ItemName:        item,
		Description:     description,
		SellerName:      fields[2],
		StartingPrice:   start,
		BidIncrement:    increment,
		DurationMinutes: minutes,
	}})
}

// terminalDisplay prints rendered fragments to the terminal. The dispatcher
// and the command loop both write, so output is mutex-guarded.
type terminalDisplay struct {
	mu  sync.Mutex
	out io.Writer
}

func newTerminalDisplay(out io.Writer) *terminalDisplay {
	return &terminalDisplay{out: out}
}

func (d *terminalDisplay) SetRegion(region app.Region, fragment string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "\n--- %s ---\n%s\n", region, fragment)
}

func (d *terminalDisplay) ClearRegion(region app.Region) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "\n--- %s cleared ---\n", region)
}

func (d *terminalDisplay) ShowSection(section app.Section) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "\n=== %s ===\n", section)
}

func (d *terminalDisplay) ShowDialog() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.out, "\n=== bid dialog open ===")
}

func (d *terminalDisplay) HideDialog() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.out, "\n=== bid dialog closed ===")
}

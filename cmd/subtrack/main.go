package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"subtrack/internal/classify"
	"subtrack/internal/config"
	"subtrack/internal/entity"
	"subtrack/internal/gateways/backend"
	httpGateway "subtrack/internal/gateways/http"
	"subtrack/internal/logo"
	listRepository "subtrack/internal/repository/subscription/file"
	tokenRepository "subtrack/internal/repository/token/file"
	usecaseInternal "subtrack/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type app struct {
	cfg   *config.Config
	log   *slog.Logger
	logos *logo.Resolver
	subs  *usecaseInternal.Subscription
	auth  *usecaseInternal.Auth
	imp   *usecaseInternal.Importer
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	log := setupLogger(cfg.Env)
	log.Debug("debug messages are enabled")

	tokens := tokenRepository.NewStore(cfg.State.TokenPath())
	cache := listRepository.NewListStore(cfg.State.ListPath())
	logos := logo.NewResolver(logo.WithServiceBaseURL(cfg.Logos.BaseURL))
	client := backend.New(cfg.Backend.BaseURL, tokens,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithLogger(log),
	)

	a := &app{
		cfg:   cfg,
		log:   log,
		logos: logos,
		subs:  usecaseInternal.NewSubscription(client, cache),
		auth:  usecaseInternal.NewAuth(client, tokens, cache),
		imp:   usecaseInternal.NewImporter(client, cache, logos),
	}

	cmd, args := os.Args[1], os.Args[2:]
	if err := a.run(ctx, cmd, args); err != nil {
		fmt.Fprintln(os.Stderr, "Fejl:", userMessage(err))
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "signup":
		return a.cmdSignup(ctx, args)
	case "social-login":
		return a.cmdSocialLogin(ctx, args)
	case "logout":
		return a.cmdLogout()
	case "list":
		return a.cmdList(ctx, args)
	case "add":
		return a.cmdAdd(ctx, args)
	case "delete":
		return a.cmdDelete(ctx, args)
	case "summary":
		return a.cmdSummary(ctx)
	case "cancel":
		return a.cmdCancel(ctx, args)
	case "link-bank":
		return a.cmdLinkBank(ctx)
	case "import":
		return a.cmdImport(ctx, args)
	case "analyze-pdf":
		return a.cmdAnalyzePDF(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "konto-email")
	password := fs.String("password", "", "adgangskode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.auth.LogIn(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Println("Logget ind.")
	return nil
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "konto-email")
	password := fs.String("password", "", "adgangskode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	user, err := a.auth.SignUp(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Konto oprettet for %s. Log ind med 'subtrack login'.\n", user.Email)
	return nil
}

func (a *app) cmdSocialLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("social-login", flag.ExitOnError)
	provider := fs.String("provider", "", "google, facebook eller linkedin")
	token := fs.String("token", "", "adgangstoken fra udbyderen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.auth.SocialLogIn(ctx, *provider, *token); err != nil {
		return err
	}
	fmt.Println("Logget ind via " + *provider + ".")
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.auth.LogOut(); err != nil {
		return err
	}
	fmt.Println("Logget ud.")
	return nil
}

func (a *app) cmdList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	category := fs.String("category", classify.CategoryAll, "kategori-filter")
	sortKey := fs.String("sort", string(classify.SortByDate), "sortering: name, price eller date")
	offline := fs.Bool("offline", false, "vis kun den lokale cache")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *offline {
		if _, err := a.subs.PrimeFromCache(); err != nil {
			return err
		}
	} else if _, err := a.subs.Refresh(ctx); err != nil {
		// auth and validation failures are the user's problem; anything
		// else falls back to the cached list
		var ve *backend.ValidationError
		if errors.Is(err, backend.ErrNotAuthenticated) || errors.As(err, &ve) {
			return err
		}
		a.log.Warn("refresh failed, using cached list", slog.String("error", err.Error()))
		if _, err := a.subs.PrimeFromCache(); err != nil {
			return err
		}
	}

	view := a.subs.ListView(*category, classify.SortKey(*sortKey), time.Now())
	if len(view.Upcoming) == 0 && len(view.Active) == 0 {
		fmt.Println("Ingen abonnementer endnu.")
		return nil
	}

	if len(view.Upcoming) > 0 {
		fmt.Println("Fornyes snart:")
		for _, sub := range view.Upcoming {
			printSubscription(sub, a.logos)
		}
		fmt.Println()
	}
	if len(view.Active) > 0 {
		fmt.Println("Aktive abonnementer:")
		for _, sub := range view.Active {
			printSubscription(sub, a.logos)
		}
	}
	return nil
}

func (a *app) cmdAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	title := fs.String("title", "", "navn på abonnementet")
	amount := fs.Float64("amount", 0, "pris pr. periode")
	date := fs.String("date", "", "næste fornyelsesdato (YYYY-MM-DD)")
	category := fs.String("category", "", "kategori")
	notes := fs.String("notes", "", "noter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft := entity.Subscription{
		Title:       *title,
		Amount:      *amount,
		RenewalDate: *date,
		Category:    *category,
		Notes:       *notes,
	}
	if draft.Category == "" {
		draft.Category = classify.Categorize(draft.Title)
	}
	if domain := a.logos.Resolve(draft.Title); domain != "" {
		draft.Domain = domain
		draft.LogoURL = a.logos.LogoURL(domain, logo.SizeList)
	}

	created, err := a.subs.Add(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Tilføjet %s (id %d).\n", created.Title, created.ID)
	return nil
}

func (a *app) cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "id på abonnementet")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.subs.Remove(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Slettet.")
	return nil
}

func (a *app) cmdSummary(ctx context.Context) error {
	sum, err := a.subs.Summary(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Månedligt forbrug: %.2f kr.\n", sum.MonthlyTotal)
	if len(sum.TopExpensive) > 0 {
		fmt.Println("Dyreste abonnementer:")
		for _, sub := range sum.TopExpensive {
			fmt.Printf("  %-24s %8.2f %s\n", sub.Title, sub.Amount, sub.Currency)
		}
	}
	if len(sum.CategorySpending) > 0 {
		fmt.Println("Pr. kategori:")
		for _, ct := range sum.CategorySpending {
			fmt.Printf("  %-24s %8.2f kr.\n", ct.Category, ct.Total)
		}
	}
	return nil
}

func (a *app) cmdCancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	merchant := fs.String("merchant", "", "navn på tjenesten")
	if err := fs.Parse(args); err != nil {
		return err
	}

	link, err := a.subs.CancelLink(ctx, *merchant)
	if err != nil || link == "" {
		if err != nil {
			a.log.Debug("no curated cancel link", slog.String("merchant", *merchant), slog.String("error", err.Error()))
		}
		link = a.logos.CancelURL(entity.Subscription{Title: *merchant})
	}
	if link == "" {
		fmt.Printf("Ingen opsigelsesside kendt for %s. Kontakt tjenesten direkte.\n", *merchant)
		return nil
	}
	fmt.Println("Opsig her:", link)
	return nil
}

func (a *app) cmdLinkBank(ctx context.Context) error {
	results := make(chan httpGateway.CallbackResult, 1)
	server := httpGateway.New(results, *a.cfg, a.log,
		httpGateway.WithHost(a.cfg.Callback.Host),
		httpGateway.WithPort(uint16(a.cfg.Callback.Port)),
		httpGateway.WithLogger(a.log),
		httpGateway.WithTimeout(a.cfg.Callback.Timeout),
	)

	serverCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Run(serverCtx)
	}()

	fmt.Println("Gennemfør bank-login i browseren. Banken sender dig tilbage til:")
	fmt.Println("  " + server.RedirectURI())

	var res httpGateway.CallbackResult
	select {
	case res = <-results:
	case err := <-serverErr:
		if err != nil {
			return err
		}
		return errors.New("callback server stopped before any redirect")
	case <-ctx.Done():
		return ctx.Err()
	}
	stopServer()

	if res.Err != "" {
		return fmt.Errorf("bank link rejected: %s", res.Err)
	}

	bankToken, err := a.imp.ExchangeCode(ctx, res.Code)
	if err != nil {
		return err
	}
	fmt.Println("Bank forbundet.")

	if accounts, err := a.imp.Accounts(ctx, bankToken); err == nil && len(accounts) > 0 {
		fmt.Println("Forbundne konti:")
		for _, acc := range accounts {
			fmt.Println("  " + acc.Name)
		}
	}

	fmt.Println("Henter transaktioner...")
	return a.importWithToken(ctx, bankToken)
}

func (a *app) cmdImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	bankToken := fs.String("token", "", "bank-adgangstoken fra link-bank")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bankToken == "" {
		return errors.New("missing -token, run 'subtrack link-bank' first")
	}
	return a.importWithToken(ctx, *bankToken)
}

func (a *app) importWithToken(ctx context.Context, bankToken string) error {
	created, err := a.imp.ImportFromBank(ctx, bankToken)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Println("Ingen abonnementer fundet i transaktionerne.")
		return nil
	}
	fmt.Printf("Importerede %d abonnementer:\n", len(created))
	for _, sub := range created {
		printSubscription(sub, a.logos)
	}
	return nil
}

func (a *app) cmdAnalyzePDF(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("analyze-pdf", flag.ExitOnError)
	path := fs.String("file", "", "kontoudtog som PDF")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errors.New("missing -file")
	}

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	created, err := a.imp.ImportFromPDF(ctx, f.Name(), f)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Println("Ingen abonnementer fundet i kontoudtoget.")
		return nil
	}
	fmt.Printf("Importerede %d abonnementer:\n", len(created))
	for _, sub := range created {
		printSubscription(sub, a.logos)
	}
	return nil
}

func printSubscription(sub entity.Subscription, logos *logo.Resolver) {
	date := sub.RenewalDate
	if t, ok := sub.RenewalTime(); ok {
		date = t.Format("02.01.2006")
	}
	line := fmt.Sprintf("  [%d] %-24s %8.2f %s  %-12s %s",
		sub.ID, sub.Title, sub.Amount, sub.Currency, date, sub.Category)
	if cancel := logos.CancelURL(sub); cancel != "" {
		line += "  opsig: " + cancel
	}
	fmt.Println(strings.TrimRight(line, " "))
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, backend.ErrInvalidCredentials):
		return "forkert email eller adgangskode"
	case errors.Is(err, backend.ErrNotAuthenticated),
		errors.Is(err, tokenRepository.ErrNoToken),
		errors.Is(err, tokenRepository.ErrTokenExpired):
		return "du er ikke logget ind, brug 'subtrack login'"
	case errors.Is(err, usecaseInternal.ErrMissingCredentials):
		return "angiv både -email og -password"
	default:
		return err.Error()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `brug: subtrack <kommando> [flag]

kommandoer:
  login        log ind med email og adgangskode
  signup       opret en konto
  social-login log ind via en udbyder (-provider, -token)
  logout       log ud og ryd lokal tilstand
  list         vis abonnementer (-category, -sort, -offline)
  add          tilføj et abonnement (-title, -amount, -date)
  delete       slet et abonnement (-id)
  summary      vis forbrugsoverblik
  cancel       find opsigelsessiden for en tjeneste (-merchant)
  link-bank    forbind en bank og importér abonnementer
  import       importér med et eksisterende bank-token (-token)
  analyze-pdf  analysér et kontoudtog (-file)`)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return log
}

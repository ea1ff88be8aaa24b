// adminctl is a terminal front-end for the intern attendance admin API. It
// drives the same screen controllers the web console uses: filtered paginated
// lists, page-scoped stats, and the user import/export flows.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/magangkita/admin-console-go/internal/api"
	"github.com/magangkita/admin-console-go/internal/config"
	"github.com/magangkita/admin-console-go/internal/controller"
	"github.com/magangkita/admin-console-go/internal/screen"
	"github.com/magangkita/admin-console-go/internal/session"

	attendancedomain "github.com/magangkita/admin-console-go/internal/domain/attendance"
	leavedomain "github.com/magangkita/admin-console-go/internal/domain/leave"
	logbookdomain "github.com/magangkita/admin-console-go/internal/domain/logbook"
	userdomain "github.com/magangkita/admin-console-go/internal/domain/user"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logger := cfg.Logger()
	slog.SetDefault(logger)

	token, err := cfg.Token()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading token:", err)
		os.Exit(1)
	}

	client, err := api.NewClient(cfg.APIBaseURL,
		api.WithTokenSource(func() string { return token }),
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error building API client:", err)
		os.Exit(1)
	}

	notifier := controller.SlogNotifier{Log: logger}
	ctx := context.Background()

	switch os.Args[1] {
	case "attendance":
		err = runAttendance(ctx, cfg, client, notifier, os.Args[2:])
	case "leave":
		err = runLeave(ctx, client, notifier, os.Args[2:])
	case "logbook":
		err = runLogbook(ctx, client, notifier, os.Args[2:])
	case "users":
		err = runUsers(ctx, client, notifier, os.Args[2:])
	case "divisions":
		err = runDivisions(ctx, client, notifier)
	case "settings":
		err = runSettings(ctx, client, notifier, os.Args[2:])
	case "whoami":
		err = runWhoami(token)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: adminctl <command> [flags]

Commands:
  attendance   list attendance records (supports -watch)
  leave        list leave requests
  logbook      list logbook entries
  users        list users, or -import/-export/-template
  divisions    list divisions
  settings     show system settings, or update them via flags
  whoami       decode the configured session token`)
}

func runAttendance(ctx context.Context, cfg *config.Config, client *api.Client, notifier controller.Notifier, args []string) error {
	fs := flag.NewFlagSet("attendance", flag.ExitOnError)
	from := fs.String("from", "", "start date (YYYY-MM-DD)")
	to := fs.String("to", "", "end date (YYYY-MM-DD)")
	division := fs.String("division", "", "division id")
	status := fs.String("status", "", "status filter")
	workType := fs.String("work-type", "", "onsite or offsite")
	search := fs.String("search", "", "search text")
	page := fs.Int("page", 1, "page number")
	watch := fs.Bool("watch", false, "keep the list refreshing")
	_ = fs.Parse(args)

	scr := screen.NewAttendance(client, notifier,
		controller.WithPageSize[attendancedomain.Record](cfg.PageSize),
		controller.WithAutoRefreshInterval[attendancedomain.Record](cfg.AutoRefreshInterval),
	)
	defer scr.Close()

	setIf(scr.List.SetFilterQuiet, "date_from", *from)
	setIf(scr.List.SetFilterQuiet, "date_to", *to)
	setIf(scr.List.SetFilterQuiet, "division_id", *division)
	setIf(scr.List.SetFilterQuiet, "status", *status)
	setIf(scr.List.SetFilterQuiet, "work_type", *workType)
	setIf(scr.List.SetFilterQuiet, controller.SearchKey, *search)
	scr.List.SetPageQuiet(*page)

	if err := scr.Reload(ctx); err != nil {
		return err
	}
	printAttendance(scr.Snapshot())

	if !*watch {
		return nil
	}

	scr.StartAutoRefresh()
	fmt.Println("Watching; Ctrl+C to stop.")
	tick := time.NewTicker(cfg.AutoRefreshInterval)
	defer tick.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case <-tick.C:
			printAttendance(scr.Snapshot())
		case <-sig:
			return nil
		}
	}
}

func printAttendance(s controller.Snapshot[attendancedomain.Record]) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tNAME\tSTATUS\tWORK\tIN\tOUT")
	for _, r := range s.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Date, r.User.Name,
			attendancedomain.StatusBadge(r.Status).Label,
			attendancedomain.WorkTypeBadge(r.WorkType).Label,
			str(r.ClockIn), str(r.ClockOut))
	}
	w.Flush()
	printFooter(s.Stats, s.Meta, s.Window)
}

func runLeave(ctx context.Context, client *api.Client, notifier controller.Notifier, args []string) error {
	fs := flag.NewFlagSet("leave", flag.ExitOnError)
	status := fs.String("status", "", "status filter")
	kind := fs.String("type", "", "leave type filter")
	search := fs.String("search", "", "search text")
	page := fs.Int("page", 1, "page number")
	_ = fs.Parse(args)

	scr := screen.NewLeave(client, notifier)
	defer scr.Close()
	setIf(scr.List.SetFilterQuiet, "status", *status)
	setIf(scr.List.SetFilterQuiet, "type", *kind)
	setIf(scr.List.SetFilterQuiet, controller.SearchKey, *search)
	scr.List.SetPageQuiet(*page)

	if err := scr.Reload(ctx); err != nil {
		return err
	}
	s := scr.Snapshot()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tFROM\tTO\tDAYS\tSTATUS")
	for _, r := range s.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.User.Name, leavedomain.TypeBadge(r.Type).Label,
			r.StartDate, r.EndDate, r.TotalDays,
			leavedomain.StatusBadge(r.Status).Label)
	}
	w.Flush()
	printFooter(s.Stats, s.Meta, s.Window)
	return nil
}

func runLogbook(ctx context.Context, client *api.Client, notifier controller.Notifier, args []string) error {
	fs := flag.NewFlagSet("logbook", flag.ExitOnError)
	status := fs.String("status", "", "status filter")
	search := fs.String("search", "", "search text")
	page := fs.Int("page", 1, "page number")
	_ = fs.Parse(args)

	scr := screen.NewLogbook(client, notifier)
	defer scr.Close()
	setIf(scr.List.SetFilterQuiet, "status", *status)
	setIf(scr.List.SetFilterQuiet, controller.SearchKey, *search)
	scr.List.SetPageQuiet(*page)

	if err := scr.Reload(ctx); err != nil {
		return err
	}
	s := scr.Snapshot()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tNAME\tACTIVITY\tSTATUS")
	for _, r := range s.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Date, r.User.Name, r.Activity,
			logbookdomain.StatusBadge(r.Status).Label)
	}
	w.Flush()
	printFooter(s.Stats, s.Meta, s.Window)
	return nil
}

func runUsers(ctx context.Context, client *api.Client, notifier controller.Notifier, args []string) error {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	role := fs.String("role", "", "role filter")
	cohort := fs.String("cohort", "", "cohort filter (client-side)")
	source := fs.String("source", "", "source of internship filter (client-side)")
	search := fs.String("search", "", "search text")
	page := fs.Int("page", 1, "page number")
	importPath := fs.String("import", "", "import users from a spreadsheet")
	exportPath := fs.String("export", "", "export users to a file")
	templatePath := fs.String("template", "", "download the import template to a file")
	_ = fs.Parse(args)

	scr := screen.NewUsers(client, notifier)
	defer scr.Close()

	switch {
	case *importPath != "":
		f, err := os.Open(*importPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening file:", err)
			return err
		}
		defer f.Close()
		res, err := scr.Import(ctx, *importPath, "", f)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d users\n", res.Data.Count)
		for _, row := range res.Errors {
			fmt.Printf("  row %d: %v\n", row.Row, row.Errors)
		}
		return nil
	case *exportPath != "":
		data, err := scr.Export(ctx)
		if err != nil {
			return err
		}
		return os.WriteFile(*exportPath, data, 0o644)
	case *templatePath != "":
		data, err := scr.Template(ctx)
		if err != nil {
			return err
		}
		return os.WriteFile(*templatePath, data, 0o644)
	}

	setIf(scr.List.SetFilterQuiet, "role", *role)
	setIf(scr.List.SetFilterQuiet, "cohort", *cohort)
	setIf(scr.List.SetFilterQuiet, "source", *source)
	setIf(scr.List.SetFilterQuiet, controller.SearchKey, *search)
	scr.List.SetPageQuiet(*page)

	if err := scr.Reload(ctx); err != nil {
		return err
	}
	s := scr.Snapshot()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tROLE\tDIVISION\tCOHORT\tACTIVE")
	for _, r := range s.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v\n",
			r.Name, r.Email, userdomain.RoleBadge(r.Role).Label,
			r.DivisionName, r.Cohort, r.Active)
	}
	w.Flush()
	printFooter(s.Stats, s.Meta, s.Window)
	return nil
}

func runDivisions(ctx context.Context, client *api.Client, notifier controller.Notifier) error {
	scr := screen.NewDivisions(client, notifier)
	if err := scr.Load(ctx); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMEMBERS\tDESCRIPTION")
	for _, d := range scr.Items() {
		desc := ""
		if d.Description != nil {
			desc = *d.Description
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", d.Name, d.MemberCount, desc)
	}
	return w.Flush()
}

func runSettings(ctx context.Context, client *api.Client, notifier controller.Notifier, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	officeStart := fs.String("office-start", "", "office start time (HH:MM)")
	officeEnd := fs.String("office-end", "", "office end time (HH:MM)")
	lateThreshold := fs.Int("late-threshold", -1, "late threshold in minutes")
	minQuota := fs.Int("min-leave-quota", -1, "minimum leave quota in days")
	maxPerMonth := fs.Int("max-leave-per-month", -1, "maximum leave requests per month")
	reminder := fs.String("logbook-reminder", "", "logbook reminder time (HH:MM)")
	_ = fs.Parse(args)

	scr := screen.NewSettings(client, notifier)
	if err := scr.Load(ctx); err != nil {
		return err
	}

	next := scr.Current()
	changed := false
	if *officeStart != "" {
		next.OfficeStartTime = *officeStart
		changed = true
	}
	if *officeEnd != "" {
		next.OfficeEndTime = *officeEnd
		changed = true
	}
	if *lateThreshold >= 0 {
		next.LateThresholdMinutes = *lateThreshold
		changed = true
	}
	if *minQuota >= 0 {
		next.MinLeaveQuota = *minQuota
		changed = true
	}
	if *maxPerMonth >= 0 {
		next.MaxLeavePerMonth = *maxPerMonth
		changed = true
	}
	if *reminder != "" {
		next.LogbookReminderTime = *reminder
		changed = true
	}
	if changed {
		if err := scr.Save(ctx, next); err != nil {
			return err
		}
	}

	s := scr.Current()
	fmt.Printf("Office hours:        %s - %s\n", s.OfficeStartTime, s.OfficeEndTime)
	fmt.Printf("Late threshold:      %d minutes\n", s.LateThresholdMinutes)
	fmt.Printf("Min leave quota:     %d days\n", s.MinLeaveQuota)
	fmt.Printf("Max leave per month: %d\n", s.MaxLeavePerMonth)
	fmt.Printf("Logbook reminder:    %s\n", s.LogbookReminderTime)
	fmt.Printf("Offsite allowed:     %v\n", s.AllowOffsite)
	return nil
}

func runWhoami(token string) error {
	if token == "" {
		fmt.Println("No token configured; you would land on /login")
		return nil
	}
	sess, err := session.FromToken(token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error decoding token:", err)
		return err
	}
	c := sess.Claims()
	fmt.Printf("User:    %s (%s)\n", c.Name, c.Email)
	fmt.Printf("Role:    %s\n", c.Role)
	if !c.ExpiresAt.IsZero() {
		fmt.Printf("Expires: %s\n", c.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Printf("Landing: %s\n", sess.LandingPath(time.Now()))
	return nil
}

func printFooter(stats controller.Stats, meta *api.PageMeta, window []int) {
	fmt.Printf("\nTotal: %d", stats.Total)
	for key, n := range stats.Counts {
		fmt.Printf("  %s: %d (%.1f%%)", key, n, stats.Percent[key])
	}
	fmt.Println()
	if meta == nil {
		return
	}
	fmt.Printf("Page %d/%d  pages shown: %v\n", meta.CurrentPage, meta.TotalPages, window)
}

func setIf(set func(key, value string), key, value string) {
	if value != "" {
		set(key, value)
	}
}

func str(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"bureau/internal/backoffice/client"
	"bureau/internal/backoffice/display"
	"bureau/internal/backoffice/filter"
	"bureau/internal/backoffice/lookup"
	"bureau/internal/backoffice/session"
	"bureau/internal/domain/entity"

	"github.com/pkg/errors"
)

// kvList collects repeated "field=value" flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)

	return nil
}

func splitKV(raw string) (string, string, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || name == "" {
		return "", "", errors.Errorf("expected field=value, got %q", raw)
	}

	return name, value, nil
}

// parseFieldValue turns a CLI string into the typed value the track field
// machinery expects: bool literals for checkboxes, numbers for ids and
// amounts, everything else stays a string.
func parseFieldValue(raw string) any {
	switch raw {
	case "true", "yes":
		return true
	case "false", "no":
		return false
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}

	return raw
}

func (a *app) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "employee email")
	password := fs.String("password", "", "password (or set BUREAU_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	if *password == "" {
		*password = os.Getenv("BUREAU_PASSWORD")
	}
	if *email == "" || *password == "" {
		return errors.New("login requires -email and -password (or BUREAU_PASSWORD)")
	}

	sess, err := a.newClient().Login(context.Background(), *email, *password)
	if err != nil {
		return err
	}
	if err := a.saveSession(sess); err != nil {
		return err
	}

	fmt.Printf("logged in as %s (%s)\n", sess.Employee.FullName, sess.Employee.Role)

	return nil
}

func (a *app) logout() error {
	if err := a.clearSession(); err != nil {
		return err
	}

	fmt.Println("logged out")

	return nil
}

func (a *app) list(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	filterName := fs.String("filter", "", "status filter (no_action, pinned, online, ...)")
	search := fs.String("search", "", "name/id search term")
	page := fs.Int("page", 0, "page number")
	perPage := fs.Int("per-page", 20, "rows per page")
	clear := fs.Bool("clear", false, "clear the persisted filter first")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	store := a.filterStore()
	if *clear {
		if err := store.Clear(); err != nil {
			return err
		}
	}

	state, err := store.Load()
	if err != nil {
		a.logger.Warn("discarding unreadable filter state", "error", err)
		state = filter.State{}
	}

	// Explicit flags win over the persisted state.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "filter":
			state.Filter = *filterName
		case "search":
			state.Search = *search
		case "page":
			state.Page = *page
		}
	})
	if state.Page < 1 {
		state.Page = 1
	}

	c, _, err := a.authedClient()
	if err != nil {
		return err
	}

	records, err := c.ListCustomers(context.Background(), state.Filter, state.Search)
	if err != nil {
		return err
	}

	if err := store.Save(state); err != nil {
		a.logger.Warn("could not persist filter state", "error", err)
	}

	pageOut := display.Paginate(records, state.Page, *perPage)
	renderCustomerList(pageOut)

	return nil
}

func renderCustomerList(page display.Page[client.Record]) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USER ID\tNAME\tPAYMENT\tAGREEMENT\tSETTLEMENT\tASSIGNED TO\tFLAGS")
	for _, record := range page.Items {
		assigned := "-"
		if record.AssignedEmployee != nil {
			assigned = record.AssignedEmployee.FullName
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			record.UserID,
			record.FullName,
			badgeCell(record.Status, record.Status.Payment),
			badgeCell(record.Status, record.Status.Agreement),
			badgeCell(record.Status, record.Status.Settlement),
			assigned,
			flagCell(record.Status),
		)
	}
	_ = w.Flush()

	fmt.Printf("page %d/%d (%d customers)\n", page.Number, page.TotalPages, page.Total)
}

func badgeCell(status client.StatusBadge, tone string) string {
	if status.NoAction {
		return "no action"
	}

	return tone
}

func flagCell(status client.StatusBadge) string {
	var flags []string
	if status.Pinned {
		flags = append(flags, "pinned")
	}
	if status.Online {
		flags = append(flags, "online")
	}
	if len(flags) == 0 {
		return "-"
	}

	return strings.Join(flags, ",")
}

func (a *app) show(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}
	if fs.NArg() != 1 {
		return errors.New("usage: bureauctl show <user_id>")
	}

	c, _, err := a.authedClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	record, err := c.GetCustomer(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	cache := lookup.NewCache(c, a.logger)
	if err := cache.Load(ctx, entity.LookupCategories()); err != nil {
		return err
	}

	renderCustomer(record, cache)

	return nil
}

func renderCustomer(record *client.Record, cache *lookup.Cache) {
	fmt.Printf("%s  (%s)  tone=%s\n", record.FullName, record.UserID, display.ColorForID(record.UserID))
	if record.Email != "" {
		fmt.Printf("email: %s\n", record.Email)
	}
	if record.Phone != "" {
		fmt.Printf("phone: %s\n", record.Phone)
	}
	if record.AssignedEmployee != nil {
		fmt.Printf("assigned to: %s (%s)\n", record.AssignedEmployee.FullName, record.AssignedEmployee.UserID)
	}
	fmt.Println(renderBadge(record.Status))

	for _, track := range entity.Tracks() {
		spec, _ := entity.SpecFor(track)

		fmt.Printf("\n[%s]\n", track)
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, field := range spec.Fields {
			fmt.Fprintf(w, "  %s\t%s\n", field.Name, cache.ResolveLabel(field.Name, record.Fields[field.Name]))
		}
		_ = w.Flush()
	}
}

func renderBadge(status client.StatusBadge) string {
	if status.NoAction {
		return "status: no action"
	}

	return fmt.Sprintf("status: payment=%s agreement=%s settlement=%s",
		status.Payment, status.Agreement, status.Settlement)
}

func (a *app) edit(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	trackName := fs.String("track", "", "track to edit: payment, agreement, settlement")
	var sets, uploads, removals kvList
	fs.Var(&sets, "set", "stage field=value (repeatable)")
	fs.Var(&uploads, "file", "stage field=path upload (repeatable)")
	fs.Var(&removals, "remove", "stage removal of a file field (repeatable)")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}
	if fs.NArg() != 1 {
		return errors.New("usage: bureauctl edit <user_id> -track <track> [-set f=v] [-file f=path] [-remove f]")
	}

	track := entity.Track(*trackName)
	if !track.IsValid() {
		return errors.Errorf("unknown track %q", *trackName)
	}
	if len(sets) == 0 && len(uploads) == 0 && len(removals) == 0 {
		return errors.New("nothing staged: pass -set, -file, or -remove")
	}

	c, identity, err := a.authedClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	record, err := c.GetCustomer(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	editor := session.New(c, a.logger, identity.Employee.Role == "admin")
	editor.SelectCustomer(record)
	if err := editor.BeginEdit(track); err != nil {
		return err
	}

	for _, raw := range sets {
		name, value, err := splitKV(raw)
		if err != nil {
			return err
		}
		if err := editor.SetField(track, name, parseFieldValue(value)); err != nil {
			return errors.Wrapf(err, "set %s", name)
		}
	}

	closers, err := stageUploads(editor, track, uploads)
	defer closers()
	if err != nil {
		return err
	}

	for _, name := range removals {
		if err := editor.RemoveFile(track, name); err != nil {
			return errors.Wrapf(err, "remove %s", name)
		}
	}

	result, err := editor.Save(ctx, track)
	if err != nil {
		return err
	}

	return renderSaveResult(result)
}

// stageUploads opens each field=path upload and stages it. The returned
// closer releases the file handles after Save.
func stageUploads(editor *session.Session, track entity.Track, uploads kvList) (func(), error) {
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	for _, raw := range uploads {
		name, path, err := splitKV(raw)
		if err != nil {
			return closeAll, err
		}

		f, err := os.Open(path)
		if err != nil {
			return closeAll, errors.Wrapf(err, "open upload for %s", name)
		}
		files = append(files, f)

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		err = editor.StageFile(track, name, client.Attachment{
			Filename:    filepath.Base(path),
			ContentType: contentType,
			Content:     f,
		})
		if err != nil {
			return closeAll, errors.Wrapf(err, "stage %s", name)
		}
	}

	return closeAll, nil
}

func renderSaveResult(result *session.Result) error {
	switch result.Outcome {
	case session.OutcomeSaved:
		fmt.Println("saved")

		return nil
	case session.OutcomeNoChanges:
		fmt.Println("no changes to save")

		return nil
	case session.OutcomeInvalid, session.OutcomeRejected:
		for field, messages := range result.FieldErrors {
			for _, message := range messages {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
			}
		}

		return errors.New("save rejected")
	case session.OutcomeStale:
		return errors.New("save response was stale and discarded")
	default:
		return errors.Errorf("unexpected save outcome %q", result.Outcome)
	}
}

func (a *app) assign(args []string) error {
	fs := flag.NewFlagSet("assign", flag.ExitOnError)
	customer := fs.String("customer", "", "customer user id")
	employee := fs.String("employee", "", "employee user id")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}
	if *customer == "" || *employee == "" {
		return errors.New("assign requires -customer and -employee")
	}

	c, _, err := a.authedClient()
	if err != nil {
		return err
	}

	if err := c.AssignCustomer(context.Background(), *customer, *employee); err != nil {
		return err
	}

	fmt.Printf("assigned %s to %s\n", *customer, *employee)

	return nil
}

func (a *app) team(args []string) error {
	fs := flag.NewFlagSet("team", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	c, _, err := a.authedClient()
	if err != nil {
		return err
	}

	members, err := c.ListTeam(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USER ID\tNAME\tEMAIL\tROLE")
	for _, member := range members {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", member.UserID, member.FullName, member.Email, member.Role)
	}

	return errors.WithStack(w.Flush())
}

func (a *app) notifications(args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	limit := fs.Int("limit", 20, "feed entries to fetch")
	offset := fs.Int("offset", 0, "feed offset")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	c, _, err := a.authedClient()
	if err != nil {
		return err
	}

	feed, err := c.ListNotifications(context.Background(), *limit, *offset)
	if err != nil {
		return err
	}

	if len(feed) == 0 {
		fmt.Println("no notifications")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, entry := range feed {
		marker := "*"
		if entry.Read {
			marker = " "
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", marker, entry.ID, entry.CreatedAt, entry.CustomerUserID, entry.Message)
	}

	return errors.WithStack(w.Flush())
}

func (a *app) markRead(args []string) error {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}
	if fs.NArg() != 1 {
		return errors.New("usage: bureauctl read <notification_id>")
	}

	c, _, err := a.authedClient()
	if err != nil {
		return err
	}

	if err := c.MarkNotificationRead(context.Background(), fs.Arg(0)); err != nil {
		return err
	}

	fmt.Println("marked read")

	return nil
}

func (a *app) lookups(args []string) error {
	fs := flag.NewFlagSet("lookups", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}
	if fs.NArg() != 1 {
		return errors.Errorf("usage: bureauctl lookups <category> (one of %s)",
			strings.Join(entity.LookupCategories(), ", "))
	}

	category := fs.Arg(0)
	if !entity.IsLookupCategory(category) {
		return errors.Errorf("unknown lookup category %q", category)
	}

	c, _, err := a.authedClient()
	if err != nil {
		return err
	}

	cache := lookup.NewCache(c, a.logger)
	if err := cache.Load(context.Background(), []string{category}); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL")
	for _, option := range cache.Options(category) {
		fmt.Fprintf(w, "%d\t%s\n", option.ID, option.Label)
	}

	return errors.WithStack(w.Flush())
}

func (a *app) qr(args []string) error {
	fs := flag.NewFlagSet("qr", flag.ExitOnError)
	out := fs.String("o", "", "output path (default <user_id>.png)")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}
	if fs.NArg() != 1 {
		return errors.New("usage: bureauctl qr <user_id> [-o out.png]")
	}

	c, _, err := a.authedClient()
	if err != nil {
		return err
	}

	png, err := c.ProfileQR(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = fs.Arg(0) + ".png"
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return errors.Wrap(err, "write qr png")
	}

	fmt.Printf("wrote %s (%d bytes)\n", path, len(png))

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/ndmitriev/memora/internal/client/api"
)

// activeScreen is the authenticated REPL. Returns true when the user wants
// to exit.
func (a *App) activeScreen(ctx context.Context) bool {
	user := a.session.State().User
	prompt := fmt.Sprintf("memora (%s)", user.Email)

	line, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return true
	}

	cmd, arg := splitCommand(line)

	switch cmd {
	case "help", "":
		fmt.Fprintln(a.out, "Commands: websites [search], addwebsite, editwebsite, delwebsite,")
		fmt.Fprintln(a.out, "          apps [search], addapp, editapp, delapp,")
		fmt.Fprintln(a.out, "          notes [search], addnote, editnote, delnote,")
		fmt.Fprintln(a.out, "          attach, attachments, attachurl,")
		fmt.Fprintln(a.out, "          setlock, removelock, logout, exit")

	case "websites":
		a.listWebsites(ctx, arg)
	case "addwebsite":
		a.addWebsite(ctx)
	case "editwebsite":
		a.editWebsite(ctx)
	case "delwebsite":
		a.deleteWebsite(ctx)

	case "apps":
		a.listApps(ctx, arg)
	case "addapp":
		a.addApp(ctx)
	case "editapp":
		a.editApp(ctx)
	case "delapp":
		a.deleteApp(ctx)

	case "notes":
		a.listNotes(ctx, arg)
	case "addnote":
		a.addNote(ctx)
	case "editnote":
		a.editNote(ctx)
	case "delnote":
		a.deleteNote(ctx)

	case "attach":
		a.addAttachment(ctx)
	case "attachments":
		a.listAttachments(ctx)
	case "attachurl":
		a.attachmentURL(ctx)

	case "setlock":
		a.setLockFromSettings(ctx)
	case "removelock":
		a.removeLock(ctx)
	case "logout":
		a.session.Logout(ctx)
		fmt.Fprintln(a.out, "Signed out.")

	case "exit", "quit":
		return true

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}

func splitCommand(line string) (cmd, arg string) {
	for i, r := range line {
		if r == ' ' {
			return line[:i], line[i+1:]
		}
	}
	return line, ""
}

func (a *App) reportError(err error) {
	fmt.Fprintf(a.out, "error: %s\n", err)
}

// --- websites ---

func (a *App) listWebsites(ctx context.Context, search string) {
	sites, err := a.api.ListWebsites(ctx, search)
	if err != nil {
		a.reportError(err)
		return
	}
	if len(sites) == 0 {
		fmt.Fprintln(a.out, "No websites.")
		return
	}
	for _, s := range sites {
		fmt.Fprintf(a.out, "%s  %s  %s  %s\n", s.ID, s.Name, s.Link, s.Purpose)
	}
}

func (a *App) addWebsite(ctx context.Context) {
	w := &api.Website{}
	var err error
	if w.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return
	}
	if w.Link, err = GetSimpleText(a.reader, "Link", a.out); err != nil {
		return
	}
	if w.Purpose, err = GetSimpleText(a.reader, "Purpose", a.out); err != nil {
		return
	}
	if w.LoginID, err = GetSimpleText(a.reader, "Login ID (optional)", a.out); err != nil {
		return
	}
	if w.Password, err = GetSecret("Password (optional)", a.out); err != nil {
		return
	}

	if _, err := a.api.CreateWebsite(ctx, w); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Website saved.")
}

func (a *App) editWebsite(ctx context.Context) {
	w := &api.Website{}
	var err error
	if w.ID, err = GetSimpleText(a.reader, "Website ID", a.out); err != nil {
		return
	}
	if w.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return
	}
	if w.Link, err = GetSimpleText(a.reader, "Link", a.out); err != nil {
		return
	}
	if w.Purpose, err = GetSimpleText(a.reader, "Purpose", a.out); err != nil {
		return
	}
	if w.LoginID, err = GetSimpleText(a.reader, "Login ID (optional)", a.out); err != nil {
		return
	}
	if w.Password, err = GetSecret("Password (optional)", a.out); err != nil {
		return
	}

	if _, err := a.api.UpdateWebsite(ctx, w); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Website updated.")
}

func (a *App) deleteWebsite(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Website ID", a.out)
	if err != nil {
		return
	}
	if err := a.api.DeleteWebsite(ctx, id); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Website deleted.")
}

// --- apps ---

func (a *App) listApps(ctx context.Context, search string) {
	apps, err := a.api.ListApps(ctx, search)
	if err != nil {
		a.reportError(err)
		return
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No apps.")
		return
	}
	for _, e := range apps {
		fmt.Fprintf(a.out, "%s  %s  %s  %s\n", e.ID, e.AppName, e.Username, e.Purpose)
	}
}

func (a *App) addApp(ctx context.Context) {
	e := &api.App{}
	var err error
	if e.AppName, err = GetSimpleText(a.reader, "App name", a.out); err != nil {
		return
	}
	if e.Purpose, err = GetSimpleText(a.reader, "Purpose", a.out); err != nil {
		return
	}
	if e.Username, err = GetSimpleText(a.reader, "Username (optional)", a.out); err != nil {
		return
	}
	if e.Password, err = GetSecret("Password (optional)", a.out); err != nil {
		return
	}

	if _, err := a.api.CreateApp(ctx, e); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "App saved.")
}

func (a *App) editApp(ctx context.Context) {
	e := &api.App{}
	var err error
	if e.ID, err = GetSimpleText(a.reader, "App ID", a.out); err != nil {
		return
	}
	if e.AppName, err = GetSimpleText(a.reader, "App name", a.out); err != nil {
		return
	}
	if e.Purpose, err = GetSimpleText(a.reader, "Purpose", a.out); err != nil {
		return
	}
	if e.Username, err = GetSimpleText(a.reader, "Username (optional)", a.out); err != nil {
		return
	}
	if e.Password, err = GetSecret("Password (optional)", a.out); err != nil {
		return
	}

	if _, err := a.api.UpdateApp(ctx, e); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "App updated.")
}

func (a *App) deleteApp(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "App ID", a.out)
	if err != nil {
		return
	}
	if err := a.api.DeleteApp(ctx, id); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "App deleted.")
}

// --- notes ---

func (a *App) listNotes(ctx context.Context, search string) {
	notes, err := a.api.ListNotes(ctx, search)
	if err != nil {
		a.reportError(err)
		return
	}
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes.")
		return
	}
	for _, n := range notes {
		fmt.Fprintf(a.out, "%s  %s\n", n.ID, n.Title)
	}
}

func (a *App) addNote(ctx context.Context) {
	n := &api.Note{}
	var err error
	if n.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return
	}
	if n.Content, err = GetMultiline(a.reader, "Content", a.out); err != nil {
		return
	}

	if _, err := a.api.CreateNote(ctx, n); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Note saved.")
}

func (a *App) editNote(ctx context.Context) {
	n := &api.Note{}
	var err error
	if n.ID, err = GetSimpleText(a.reader, "Note ID", a.out); err != nil {
		return
	}
	if n.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return
	}
	if n.Content, err = GetMultiline(a.reader, "Content", a.out); err != nil {
		return
	}

	if _, err := a.api.UpdateNote(ctx, n); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Note updated.")
}

func (a *App) deleteNote(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Note ID", a.out)
	if err != nil {
		return
	}
	if err := a.api.DeleteNote(ctx, id); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Note deleted.")
}

// --- attachments ---

func (a *App) addAttachment(ctx context.Context) {
	noteID, err := GetSimpleText(a.reader, "Note ID", a.out)
	if err != nil {
		return
	}
	filename, err := GetSimpleText(a.reader, "Filename", a.out)
	if err != nil {
		return
	}

	att, uploadURL, err := a.api.CreateAttachment(ctx, noteID, filename)
	if err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintf(a.out, "Attachment %s registered. Upload the file with:\n\n  curl -X PUT -T '%s' '%s'\n", att.ID, filename, uploadURL)
}

func (a *App) listAttachments(ctx context.Context) {
	noteID, err := GetSimpleText(a.reader, "Note ID", a.out)
	if err != nil {
		return
	}

	atts, err := a.api.ListAttachments(ctx, noteID)
	if err != nil {
		a.reportError(err)
		return
	}
	if len(atts) == 0 {
		fmt.Fprintln(a.out, "No attachments.")
		return
	}
	for _, att := range atts {
		fmt.Fprintf(a.out, "%s  %s  %s\n", att.ID, att.Filename, att.StorageKey)
	}
}

func (a *App) attachmentURL(ctx context.Context) {
	noteID, err := GetSimpleText(a.reader, "Note ID", a.out)
	if err != nil {
		return
	}
	key, err := GetSimpleText(a.reader, "Storage key", a.out)
	if err != nil {
		return
	}

	u, err := a.api.AttachmentURL(ctx, noteID, key)
	if err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintf(a.out, "Download URL (valid briefly):\n  %s\n", u)
}

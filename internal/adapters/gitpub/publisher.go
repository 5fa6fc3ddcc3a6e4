package gitpub

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

// Publisher commitea y pushea el CSV refrescado, igual que lo hacía el
// workflow original (git add / commit / push desde el job diario).
type Publisher struct {
	repoPath    string
	file        string // relativo al repo
	authorName  string
	authorEmail string
}

func New(repoPath, file, authorName, authorEmail string) *Publisher {
	if authorName == "" {
		authorName = "github-actions[bot]"
	}
	if authorEmail == "" {
		authorEmail = "github-actions[bot]@users.noreply.github.com"
	}
	return &Publisher{repoPath: repoPath, file: file, authorName: authorName, authorEmail: authorEmail}
}

func (p *Publisher) Publish(ctx context.Context) error {
	// ¿cambió el archivo? si no, no hay commit que hacer
	out, err := p.git(ctx, "status", "--porcelain", "--", p.file)
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "" {
		log.Printf("gitpub: %s sin cambios, no se commitea", p.file)
		return nil
	}

	if _, err := p.git(ctx, "add", "--", p.file); err != nil {
		return err
	}
	msg := "FPL data update: " + time.Now().UTC().Format("2006-01-02 15:04:05")
	if _, err := p.git(ctx,
		"-c", "user.name="+p.authorName,
		"-c", "user.email="+p.authorEmail,
		"commit", "-m", msg,
	); err != nil {
		return err
	}
	if _, err := p.git(ctx, "push"); err != nil {
		return err
	}
	log.Printf("gitpub: pusheado %q", msg)
	return nil
}

func (p *Publisher) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = p.repoPath
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"
)

// implicitTLSPort порт SMTPS: TLS поднимается до SMTP диалога
const implicitTLSPort = 465

// Client отправляет письма через SMTP
type Client struct {
	cfg Config
	log Logger
}

// NewClient создает новый экземпляр SMTP клиента
func NewClient(cfg Config, log Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{cfg: cfg, log: log}
}

// Send отправляет письмо; ошибки доставки возвращаются вызывающему
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.cfg.Host == "" {
		return ErrNotConfigured
	}

	addr := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))

	conn, err := c.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrSend, addr, err)
	}

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: handshake: %v", ErrSend, err)
	}
	defer client.Close()

	if c.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: c.cfg.Host}); err != nil {
				return fmt.Errorf("%w: starttls: %v", ErrSend, err)
			}
		}
	}

	if c.cfg.Username != "" {
		auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("%w: auth: %v", ErrSend, err)
		}
	}

	if err := client.Mail(c.cfg.From); err != nil {
		return fmt.Errorf("%w: MAIL FROM: %v", ErrSend, err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("%w: RCPT TO: %v", ErrSend, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: DATA: %v", ErrSend, err)
	}
	if _, err := w.Write(c.build(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("%w: write body: %v", ErrSend, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSend, err)
	}

	if err := client.Quit(); err != nil {
		c.log.Warn("SMTP QUIT failed after delivery to %s: %v", msg.To, err)
	}

	c.log.Info("Mail '%s' sent to %s", msg.Subject, msg.To)
	return nil
}

func (c *Client) dial(ctx context.Context, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: c.cfg.Timeout}

	var (
		conn net.Conn
		err  error
	)
	if c.cfg.Port == implicitTLSPort {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: c.cfg.Host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	return conn, nil
}

// build собирает RFC 5322 сообщение с текстовым телом
func (c *Client) build(msg Message) []byte {
	from := mail.Address{Name: c.cfg.FromName, Address: c.cfg.From}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from.String())
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("\r\n")
	buf.Write(bytes.ReplaceAll([]byte(msg.Body), []byte("\n"), []byte("\r\n")))

	return buf.Bytes()
}

package utils

import (
	"crypto/rand"
	"crypto/tls"
	"fmt"
	"math/big"
	"net/smtp"
	"regexp"
	"strings"

	"TagHub.com/config"
)

const (
	chars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length = 6
)

// generateRandomString 生成指定长度的乱序验证码
func generateRandomString() (string, error) {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(chars[index.Int64()])
	}
	return sb.String(), nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SendEmail 向目标邮箱发送验证码并返回该验证码
func SendEmail(to string) (string, error) {
	smtpHost := config.ConfigInfo.Smtp.Host
	smtpPort := config.ConfigInfo.Smtp.Port
	smtpUser := config.ConfigInfo.Smtp.Username
	smtpPassword := config.ConfigInfo.Smtp.Password

	addr := smtpHost + ":" + smtpPort
	tlsconfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         smtpHost,
	}

	conn, err := tls.Dial("tcp", addr, tlsconfig)
	if err != nil {
		return "", fmt.Errorf("failed to connect to server: %w", err)
	}
	c, err := smtp.NewClient(conn, smtpHost)
	if err != nil {
		return "", fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err = c.Auth(smtp.PlainAuth("", smtpUser, smtpPassword, smtpHost)); err != nil {
		return "", fmt.Errorf("authentication failed: %w", err)
	}

	verificationCode, err := generateRandomString()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	msg := []byte("To: " + to + "\r\n" +
		"Subject: TagHub verification code\r\n" +
		"\r\n" +
		verificationCode)

	if err = c.Mail(smtpUser); err != nil {
		return "", fmt.Errorf("failed to set sender: %w", err)
	}
	if err = c.Rcpt(to); err != nil {
		return "", fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return "", fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return "", fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return "", fmt.Errorf("failed to close data writer: %w", err)
	}
	c.Quit()
	return verificationCode, nil
}

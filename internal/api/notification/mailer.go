// Package notification gửi email thông báo qua SMTP.
// Gửi mail là side-effect fire-and-forget: thất bại chỉ ghi log,
// không bao giờ chặn hay làm hỏng request gốc.
package notification

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/logger"
)

// Enabled kiểm tra SMTP có được cấu hình hay không.
// SMTP_Host rỗng nghĩa là tắt gửi mail, mọi lời gọi Send trở thành no-op.
func Enabled() bool {
	cfg := global.MongoDB_ServerConfig
	return cfg != nil && cfg.SMTP_Host != ""
}

// Send gửi một email HTML trong goroutine riêng.
func Send(to, subject, htmlBody string) {
	if !Enabled() {
		return
	}
	cfg := global.MongoDB_ServerConfig

	go func() {
		m := gomail.NewMessage()
		from := cfg.SMTP_From
		if from == "" {
			from = cfg.SMTP_Username
		}
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/html", htmlBody)

		d := gomail.NewDialer(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_Username, cfg.SMTP_Password)
		if err := d.DialAndSend(m); err != nil {
			logger.GetErrorLogger().WithError(err).WithField("to", to).Error("Gửi mail thất bại")
		}
	}()
}

// SendTaskAssigned gửi thông báo giao việc cho người nhận.
func SendTaskAssigned(to, assigneeName, taskTitle, creatorName string) {
	subject := fmt.Sprintf("Bạn được giao công việc mới: %s", taskTitle)
	body := fmt.Sprintf(
		"<p>Chào %s,</p><p>Bạn vừa được <b>%s</b> giao công việc: <b>%s</b>.</p><p><a href=\"%s/tasks\">Xem chi tiết công việc</a></p>",
		assigneeName, creatorName, taskTitle, global.MongoDB_ServerConfig.FrontendURL,
	)
	Send(to, subject, body)
}

package constvars

const (
	// EmailOTPSubject is the subject line of the verification code email.
	EmailOTPSubject = "Mã xác thực OTP của bạn"

	// EmailFromNameFormat renders the sender display name, e.g. "Math Master <user@gmail.com>".
	EmailFromNameFormat = "Math Master <%s>"

	// EmailSendHTMLFormat is the raw SMTP message envelope for HTML mail.
	EmailSendHTMLFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)

// EmailOTPBodyFormat is the HTML body of the verification email. The single
// format argument is the generated OTP code.
const EmailOTPBodyFormat = `
<div style="font-family: Arial, sans-serif; color: #333; padding: 20px;">
  <h2 style="color: #6C63FF;">🔐 Xác minh tài khoản Math Master</h2>
  <p>Chào bạn,</p>
  <p>Bạn vừa yêu cầu mã OTP để xác thực tài khoản.</p>
  <p style="margin: 20px 0; font-size: 18px;">
    Mã xác thực của bạn là:
    <br/>
    <span style="display: inline-block; margin-top: 10px; padding: 12px 24px; background-color: #f4f4f4; border-radius: 8px; font-size: 26px; font-weight: bold; color: #6C63FF;">
      %s
    </span>
  </p>
  <p>Không chia sẻ mã này với bất kỳ ai.</p>
  <hr style="margin: 30px 0;" />
  <p style="font-size: 14px; color: #999;">
    Trân trọng,<br/>Đội ngũ Math Master
  </p>
</div>
`

package email

import "fmt"

// Small inline templates. Real branding lives in the frontend; these only
// need to carry the link or code.

func PasswordResetMessage(to, resetToken string) Message {
	return Message{
		To:      to,
		Subject: "Reset your HomeVest password",
		Text: fmt.Sprintf(
			"We received a request to reset your password.\n\n"+
				"Your reset code is: %s\n\n"+
				"The code expires in one hour. If you did not request this, ignore this email.",
			resetToken),
	}
}

func InstitutionalApprovedMessage(to, username, tempPassword string) Message {
	return Message{
		To:      to,
		Subject: "Your HomeVest institutional account is approved",
		Text: fmt.Sprintf(
			"Your institutional investor account has been approved.\n\n"+
				"Username: %s\nTemporary password: %s\n\n"+
				"Please sign in and change your password.",
			username, tempPassword),
	}
}

func PartnerApprovedMessage(to, username string) Message {
	return Message{
		To:      to,
		Subject: "Your HomeVest partner account is approved",
		Text: fmt.Sprintf(
			"Good news, %s: your partner account has been approved. You can sign in now.",
			username),
	}
}

func CampaignMessage(to, subject, body string) Message {
	return Message{To: to, Subject: subject, HTML: body}
}

package utils

import (
	"fmt"
	"time"
)

func SendWelcomeEmail(to, username string) error {
	subject := fmt.Sprintf("Welcome to Fintrack, %s!", username)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8" />
		<meta name="viewport" content="width=device-width, initial-scale=1.0" />
		<title>Welcome to Fintrack</title>
		<style>
			body {
				font-family: Arial, Helvetica, sans-serif;
				background-color: #f4f6f8;
				margin: 0;
				padding: 0;
			}
			.container {
				max-width: 600px;
				margin: 40px auto;
				background: #ffffff;
				border-radius: 12px;
				overflow: hidden;
				border-top: 6px solid #1f6f43;
			}
			.header {
				background-color: #1f6f43;
				color: #ffffff;
				text-align: center;
				padding: 30px 20px;
			}
			.header h1 {
				margin: 0;
				font-size: 24px;
			}
			.content {
				padding: 30px 35px;
				color: #333333;
				line-height: 1.6;
			}
			.footer {
				text-align: center;
				font-size: 12px;
				color: #888888;
				padding: 20px;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Welcome to Fintrack</h1>
			</div>
			<div class="content">
				<p>Hi %s,</p>
				<p>Your account is ready. Start recording your income and expenses,
				and keep an eye on where your money goes with filters and monthly
				statistics.</p>
				<p>Happy tracking!</p>
			</div>
			<div class="footer">
				&copy; %d Fintrack — Know where your money goes.
			</div>
		</div>
	</body>
	</html>
	`, username, time.Now().Year())

	return SendEmail(to, subject, body)
}

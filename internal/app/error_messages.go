// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shown on the site's
// pages.
//
// Messages never carry internal details: store, hashing and session
// failures all collapse into MsgTryAgainLater. Keeping them in one place
// ensures consistent wording across every page.
package app

const (
	// MsgTryAgainLater is shown for every unexpected server-side failure.
	MsgTryAgainLater = "Please try again later."

	// MsgInvalidLogin is shown on the login page after any rejected login.
	// Unknown usernames and wrong passwords share it.
	MsgInvalidLogin = "Invalid login"

	// MsgInvalidForm is shown when the submitted form body cannot be parsed.
	MsgInvalidForm = "Invalid form"

	// MsgCredentialsRequired is shown when the username or password field
	// was submitted empty.
	MsgCredentialsRequired = "Username and password are required"

	// MsgLoginTooLong is shown when the username exceeds the column width
	// of the users table.
	MsgLoginTooLong = "Username is too long"

	// MsgLoginInvalid is shown when the username contains control
	// characters.
	MsgLoginInvalid = "Username is not valid"

	// MsgPasswordTooLong is shown when the password exceeds what bcrypt can
	// hash.
	MsgPasswordTooLong = "Password is too long"

	// MsgLoginAlreadyExists is shown when a registration attempt is
	// rejected because the requested username is already in use.
	MsgLoginAlreadyExists = "User already exists, try logging in"
)

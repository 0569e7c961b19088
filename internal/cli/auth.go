package cli

import (
	"context"
	"errors"
	"os"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
	"github.com/4citeB4U/AllwaysTrucking/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form fields and creates the account.
// A successful registration leaves the user logged in. The password byte
// slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.auth.Register(ctx, services.RegisterParams{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(password),
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateKey):
			printlnFn("An account with this email already exists.")
		case errors.Is(err, common.ErrInvalidArgument):
			printlnFn("Invalid input:", err.Error())
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Success! You are now logged in as", email)
	return nil
}

// Login prompts for credentials and authenticates. An unknown email and a
// wrong password produce the same user-facing message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.auth.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password.")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Welcome back,", email)
	return nil
}

// Logout discards the persisted session. Safe to run when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the current session snapshot.
func (a *App) Whoami(ctx context.Context) error {
	s, err := a.auth.Current(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if s == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(s.Name, "<"+s.Email+">", "last login", s.LastLogin.Local().Format("2006-01-02 15:04:05"))
	return nil
}

// ChangePassword verifies the current password and replaces it.
func (a *App) ChangePassword(ctx context.Context) error {
	s, err := a.auth.Current(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		printlnFn("You need to log in first.")
		return nil
	}

	oldPassword, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.auth.ChangePassword(ctx, s.Email, string(oldPassword), string(newPassword)); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			printlnFn("Current password is wrong.")
		case errors.Is(err, common.ErrInvalidArgument):
			printlnFn("Invalid input:", err.Error())
		default:
			printlnFn("Password change failed:", err.Error())
		}
		return err
	}

	printlnFn("Password changed.")
	return nil
}

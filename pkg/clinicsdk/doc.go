/*
Package clinicsdk provides a client SDK for the Clinic Desk API.

# Client vs Session

  - Client: public endpoints (signup, login, health) and session creation
  - Session: calls that carry an access token

	client := clinicsdk.NewClient("https://clinic.example.com")

	// Register the first account as admin
	_, err := client.Signup(ctx, clinicsdk.SignupRequest{
		Name:     "Administrator",
		Email:    "admin@example.com",
		Password: "secret-password",
		Role:     authz.RoleAdmin,
	})

	// Log in
	session, err := client.Authenticate(ctx, "admin@example.com", "secret-password")

	// Manage clinics
	clinic, err := session.CreateClinic(ctx, clinicsdk.CreateClinicRequest{
		Name:    "North",
		Address: "1 North St",
	})

# Admin Signup

Signup only honours Role: authz.RoleAdmin while the service has no accounts.
After that the same request fails with ErrForbidden, including for clients
that relied on self-service admin signup in earlier releases. Create further
admins with Session.CreateUser or promote a user with Session.UpdateUser.

	_, err := client.Signup(ctx, req)
	if errors.Is(err, clinicsdk.ErrForbidden) {
		// an admin already exists; ask them to create or promote this account
	}

# Token Lifetime

Access tokens cannot be refreshed. Once a session's token passes its expiry
every call returns ErrSessionExpired without contacting the server, and the
caller has to log in again. Role changes also only take effect on the next
login because the role travels inside the token.

# Error Handling

Non-success responses are returned as *APIError. The exported sentinels match
on status code so errors.Is works:

	_, err := session.GetUser(ctx, 42)
	switch {
	case errors.Is(err, clinicsdk.ErrNotFound):
		// no such user
	case errors.Is(err, clinicsdk.ErrForbidden):
		// members may only read themselves
	}

Validation failures carry per-field reasons in APIError.Details.

# Thread Safety

Client and Session are safe for concurrent use.
*/
package clinicsdk

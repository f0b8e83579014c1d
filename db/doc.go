/*
Package db handles database schema creation and user bootstrap.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL sticks to the dialect subset shared by PostgreSQL and sqlite, so the
same schema runs on either driver.

# Tables

The schema includes:

  - app_user: Operator accounts
  - user_ward: Wards assigned to an operator
  - session: Login sessions (7-day validity)
  - property: Flat location-hierarchy master records
  - verification: On-site verification submissions
  - verification_photo: Geotagged photos per verification (max 3)
  - field_survey: Completed multi-step surveys

# Relationships

	app_user 1──* user_ward
	app_user 1──* session
	property 1──* verification
	verification 1──* verification_photo

All foreign keys use ON DELETE CASCADE.

# Bootstrap

EnsureUser provisions an operator account when the server starts with
BOOTSTRAP_USER/BOOTSTRAP_PASS configured; existing accounts are untouched.
*/
package db

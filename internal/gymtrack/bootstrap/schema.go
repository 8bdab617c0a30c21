package bootstrap

// schemaStatements create the tables when missing and add the columns
// later versions introduced. Each statement is idempotent.
// There is no ON DELETE CASCADE: children are removed by the application, children first.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS profile (
		id            uuid PRIMARY KEY,
		email         text NOT NULL UNIQUE,
		name          text NOT NULL DEFAULT '',
		password_hash text NOT NULL,
		created_at    timestamptz NOT NULL DEFAULT now()
	)`,
	`ALTER TABLE profile ADD COLUMN IF NOT EXISTS is_admin boolean NOT NULL DEFAULT false`,

	`CREATE TABLE IF NOT EXISTS exercise (
		id           uuid PRIMARY KEY,
		name         text NOT NULL,
		description  text NOT NULL DEFAULT '',
		muscle_group text NOT NULL,
		is_public    boolean NOT NULL DEFAULT false,
		owner_id     uuid NULL REFERENCES profile (id),
		created_at   timestamptz NOT NULL DEFAULT now()
	)`,
	`ALTER TABLE exercise ADD COLUMN IF NOT EXISTS status text NOT NULL DEFAULT 'pending'
		CHECK (status IN ('pending', 'approved', 'rejected'))`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'exercise_public_is_approved') THEN
			ALTER TABLE exercise ADD CONSTRAINT exercise_public_is_approved
				CHECK (NOT is_public OR status = 'approved');
		END IF;
	END
	$$`,
	`CREATE INDEX IF NOT EXISTS exercise_status_idx ON exercise (status)`,

	`CREATE TABLE IF NOT EXISTS workout (
		id          uuid PRIMARY KEY,
		owner_id    uuid NOT NULL REFERENCES profile (id),
		name        text NOT NULL,
		day_of_week text NOT NULL,
		description text NOT NULL DEFAULT '',
		is_active   boolean NOT NULL DEFAULT true,
		created_at  timestamptz NOT NULL DEFAULT now(),
		updated_at  timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS workout_owner_idx ON workout (owner_id)`,

	`CREATE TABLE IF NOT EXISTS workout_exercise (
		id           uuid PRIMARY KEY,
		workout_id   uuid NOT NULL REFERENCES workout (id),
		exercise_id  uuid NOT NULL REFERENCES exercise (id),
		sets         integer NOT NULL CHECK (sets BETWEEN 1 AND 20),
		reps         integer NOT NULL CHECK (reps BETWEEN 1 AND 100),
		rest_time    integer NOT NULL DEFAULT 0 CHECK (rest_time BETWEEN 0 AND 600),
		order_number integer NOT NULL,
		notes        text NOT NULL DEFAULT '',
		created_at   timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS workout_exercise_workout_idx ON workout_exercise (workout_id)`,

	`CREATE TABLE IF NOT EXISTS progress (
		id                  uuid PRIMARY KEY,
		owner_id            uuid NOT NULL REFERENCES profile (id),
		workout_exercise_id uuid NOT NULL REFERENCES workout_exercise (id),
		date                date NOT NULL,
		weight              double precision NOT NULL CHECK (weight >= 0),
		reps                integer NOT NULL,
		sets                integer NOT NULL,
		rpe                 smallint NULL CHECK (rpe BETWEEN 1 AND 10),
		notes               text NOT NULL DEFAULT '',
		created_at          timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS progress_workout_exercise_date_idx ON progress (workout_exercise_id, date DESC)`,

	`CREATE TABLE IF NOT EXISTS body_measurement (
		id           uuid PRIMARY KEY,
		owner_id     uuid NOT NULL REFERENCES profile (id),
		date         date NOT NULL,
		weight       double precision NULL,
		height       double precision NULL,
		chest        double precision NULL,
		waist        double precision NULL,
		hips         double precision NULL,
		biceps_left  double precision NULL,
		biceps_right double precision NULL,
		thigh_left   double precision NULL,
		thigh_right  double precision NULL,
		calf_left    double precision NULL,
		calf_right   double precision NULL,
		shoulders    double precision NULL,
		notes        text NOT NULL DEFAULT '',
		created_at   timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS body_measurement_owner_date_idx ON body_measurement (owner_id, date DESC)`,
}

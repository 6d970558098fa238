package sqlinline

const QInsertContribution = `--sql 3f6c1d2a-8e4b-47a9-b1c5-0d92e7a64f18
insert into contributions(id, name, relation, address, phone_number, amount, date, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, $5::bigint, $6::date, now(), now())
returning id, name, relation, address, phone_number, amount, to_char(date, 'YYYY-MM-DD'), created_at, updated_at;
`

const QListContributions = `--sql 7d0b9e4c-2a61-4f38-9c07-5b8f3e21d6a4
select id, name, relation, address, phone_number, amount, to_char(date, 'YYYY-MM-DD'), created_at, updated_at
from contributions
order by created_at desc;
`

const QContributionSummary = `--sql a92e5f07-63cd-4b1a-8d29-ef47016c83b5
select count(*), coalesce(sum(amount), 0)
from contributions;
`
